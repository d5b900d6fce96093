// Command journey-report builds journey workbooks from the command line.
//
// Usage:
//
//	journey-report generate --start 2024-03-01 --end 2024-03-31 -o reports/
//	journey-report send --to fleet@example.com
package main

func main() {
	Execute()
}
