package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"
)

type LogStats struct {
	TotalErrors        int
	OTPSent            int
	OTPFailures        int
	UsersVerified      int
	CheckoutsCompleted int
	OrderIDCollisions  int
	InsufficientFunds  int
	ValidationFailures int
	PaymentFailures    int
	UserActivities     map[string]int
	ErrorPatterns      map[string]int
}

func main() {
	// Get today's date for log file names
	today := time.Now().Format("2006-01-02")
	logDir := "./logs"

	stats := &LogStats{
		UserActivities: make(map[string]int),
		ErrorPatterns:  make(map[string]int),
	}

	analyzeErrorLogs(filepath.Join(logDir, fmt.Sprintf("error-%s.log", today)), stats)
	analyzeInfoLogs(filepath.Join(logDir, fmt.Sprintf("info-%s.log", today)), stats)

	printReport(stats)
}

func analyzeErrorLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()
		stats.TotalErrors++

		if strings.Contains(line, "OTP mismatch") {
			stats.OTPFailures++
			extractUserActivity(line, stats)
		}
		if strings.Contains(line, "Order id collision") {
			stats.OrderIDCollisions++
		}
		if strings.Contains(line, "Insufficient points") {
			stats.InsufficientFunds++
		}
		if strings.Contains(line, "Bank validation failed") || strings.Contains(line, "Cheque OCR failed") {
			stats.ValidationFailures++
			extractUserActivity(line, stats)
		}
		if strings.Contains(line, "Payment verification failed") {
			stats.PaymentFailures++
		}

		extractErrorPattern(line, stats)
	}
}

func analyzeInfoLogs(logFile string, stats *LogStats) {
	file, err := os.Open(logFile)
	if err != nil {
		fmt.Printf("Error opening log file %s: %v\n", logFile, err)
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "OTP sent for user ID") {
			stats.OTPSent++
			extractUserActivity(line, stats)
		}
		if strings.Contains(line, "verified successfully") {
			stats.UsersVerified++
			extractUserActivity(line, stats)
		}
		if strings.Contains(line, "Checkout complete") {
			stats.CheckoutsCompleted++
			extractUserActivity(line, stats)
		}
	}
}

func extractUserActivity(line string, stats *LogStats) {
	// Extract the user id from log lines like "... user ID: 42 ..."
	userRegex := regexp.MustCompile(`user ID: (\d+)`)
	if m := userRegex.FindStringSubmatch(line); m != nil {
		stats.UserActivities[m[1]]++
	}
}

func extractErrorPattern(line string, stats *LogStats) {
	// Extract the main error message
	parts := strings.Split(line, ":")
	if len(parts) > 1 {
		errorMsg := strings.TrimSpace(parts[1])
		stats.ErrorPatterns[errorMsg]++
	}
}

func printReport(stats *LogStats) {
	fmt.Println("\n=== Log Analysis Report ===")
	fmt.Println("Generated:", time.Now().Format("2006-01-02 15:04:05"))

	fmt.Println("\n1. Authentication:")
	fmt.Printf("   OTPs Sent: %d\n", stats.OTPSent)
	fmt.Printf("   Failed OTP Verifications: %d\n", stats.OTPFailures)
	fmt.Printf("   Users Verified: %d\n", stats.UsersVerified)

	fmt.Println("\n2. Ledger Activity:")
	fmt.Printf("   Checkouts Completed: %d\n", stats.CheckoutsCompleted)
	fmt.Printf("   Order ID Collisions: %d\n", stats.OrderIDCollisions)
	fmt.Printf("   Insufficient Funds Rejections: %d\n", stats.InsufficientFunds)

	fmt.Println("\n3. Payments & Validation:")
	fmt.Printf("   Bank Validation Failures: %d\n", stats.ValidationFailures)
	fmt.Printf("   Payment Verification Failures: %d\n", stats.PaymentFailures)

	fmt.Printf("\n4. Total Errors Logged: %d\n", stats.TotalErrors)

	fmt.Println("\n5. Most Active Users:")
	type userCount struct {
		user  string
		count int
	}
	var users []userCount
	for u, c := range stats.UserActivities {
		users = append(users, userCount{u, c})
	}
	sort.Slice(users, func(i, j int) bool { return users[i].count > users[j].count })
	for i, u := range users {
		if i >= 10 {
			break
		}
		fmt.Printf("   User %s: %d events\n", u.user, u.count)
	}

	fmt.Println("\n6. Common Error Patterns:")
	type patternCount struct {
		pattern string
		count   int
	}
	var patterns []patternCount
	for p, c := range stats.ErrorPatterns {
		patterns = append(patterns, patternCount{p, c})
	}
	sort.Slice(patterns, func(i, j int) bool { return patterns[i].count > patterns[j].count })
	for i, p := range patterns {
		if i >= 10 {
			break
		}
		fmt.Printf("   %s: %d\n", p.pattern, p.count)
	}
}
