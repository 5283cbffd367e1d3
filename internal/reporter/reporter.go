package reporter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/google/gopacket/layers"

	"port-scanner/internal/models"
)

// ServiceName returns the IANA service name registered for a TCP port, or
// an empty string when there is none.
func ServiceName(port int) string {
	s := layers.TCPPort(port).String() // "80(http)" or "12345"
	open := strings.IndexByte(s, '(')
	if open < 0 || !strings.HasSuffix(s, ")") {
		return ""
	}
	return s[open+1 : len(s)-1]
}

// Print writes a human-readable summary of report to w.
func Print(w io.Writer, report *models.Report) error {
	elapsed := report.Elapsed.Seconds()
	if len(report.OpenPorts) == 0 {
		_, err := fmt.Fprintf(w, "No open ports detected in the specified range (scanned %d ports in %.2fs).\n", report.Scanned, elapsed)
		return err
	}

	if _, err := fmt.Fprintf(w, "Open ports (%d) found in %.2fs:\n", len(report.OpenPorts), elapsed); err != nil {
		return err
	}
	for _, port := range report.OpenPorts {
		line := fmt.Sprintf("  - %d", port)
		if name := ServiceName(port); name != "" {
			line += " (" + name + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// CSVHeader returns the header row for the results CSV file.
func CSVHeader() []string {
	return []string{"dst_ip", "dst_port", "service", "status"}
}

// WriteCSV saves the open ports of report to outputFile, one row per port.
func WriteCSV(outputFile string, report *models.Report) error {
	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("create output file %s: %w", outputFile, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(CSVHeader()); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}
	for _, port := range report.OpenPorts {
		row := []string{report.Target, strconv.Itoa(port), ServiceName(port), string(models.StatusOpen)}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write record for port %d: %w", port, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush CSV: %w", err)
	}
	return file.Close()
}
