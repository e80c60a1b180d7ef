package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"

	"paydesk/internal/domain/payroll"
	"paydesk/internal/domain/textstats"
)

// Six employees covering every category and deduction combination.
func demoEmployees() []payroll.Employee {
	return []payroll.Employee{
		{ID: "101", Name: "Alice Smith", Type: payroll.FullTime, PayRate: dec("3500.00")},
		{ID: "102", Name: "Bob Johnson", Type: payroll.FullTime, PayRate: dec("4500.00"), Retirement: true},
		{ID: "103", Name: "Carol Williams", Type: payroll.FullTime, PayRate: dec("6000.00"), UnionMember: true, Retirement: true},
		{ID: "104", Name: "David Brown", Type: payroll.PartTime, PayRate: dec("28.50")},
		{ID: "105", Name: "Eva Martinez", Type: payroll.PartTime, PayRate: dec("32.00"), UnionMember: true, Retirement: true},
		{ID: "106", Name: "Frank Chen", Type: payroll.Contractor, PayRate: dec("250.00"), UnionMember: true},
	}
}

func main() {
	pdfDir := flag.String("pdf-dir", "", "write per-employee payslip PDFs into this directory")
	analyzeFile := flag.String("analyze", "", "run the text analyzer over this file after payroll")
	reportFile := flag.String("report", "", "write the text analysis report to this file")
	topWords := flag.Int("top", 10, "number of ranked words in the analysis report")
	flag.Parse()

	units := map[string]decimal.Decimal{
		"104": decimal.NewFromInt(100),
		"105": decimal.NewFromInt(80),
		"106": decimal.NewFromInt(18),
	}

	banner := strings.Repeat("#", 60)
	fmt.Println(banner)
	fmt.Println("# MONTHLY PAYROLL PROCESSING")
	fmt.Println(banner)

	payslips, err := payroll.Run(demoEmployees(), units)
	if err != nil {
		log.Fatalf("payroll run failed: %v", err)
	}

	for _, slip := range payslips {
		fmt.Println()
		fmt.Print(payroll.FormatText(slip))
	}

	fmt.Println()
	fmt.Print(payroll.FormatSummary(payroll.Summarize(payslips)))

	if *pdfDir != "" {
		writePDFs(payslips, *pdfDir)
	}

	if *analyzeFile != "" {
		analyze(*analyzeFile, *reportFile, *topWords)
	}
}

func writePDFs(payslips []payroll.Payslip, dir string) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Fatalf("create pdf dir: %v", err)
	}
	for _, slip := range payslips {
		path := filepath.Join(dir, "payslip-"+slip.Employee.ID+".pdf")
		file, err := os.Create(path)
		if err != nil {
			log.Fatalf("create %s: %v", path, err)
		}
		if err := payroll.WritePDF(slip, file); err != nil {
			file.Close()
			log.Fatalf("render %s: %v", path, err)
		}
		if err := file.Close(); err != nil {
			log.Fatalf("close %s: %v", path, err)
		}
	}
	log.Printf("wrote %d payslip PDFs to %s", len(payslips), dir)
}

func analyze(inputPath, reportPath string, topWords int) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		log.Fatalf("read %s: %v", inputPath, err)
	}

	report := textstats.Analyze(string(data), topWords)
	rendered := textstats.Format(report)

	fmt.Println()
	fmt.Print(rendered)

	if reportPath != "" {
		if err := os.WriteFile(reportPath, []byte(rendered), 0o644); err != nil {
			log.Fatalf("write report %s: %v", reportPath, err)
		}
		log.Printf("wrote analysis report to %s", reportPath)
	}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
