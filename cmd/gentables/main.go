// Command gentables fetches the Unicode Character Database's
// CaseFolding.txt and SpecialCasing.txt and prints a row count per value
// of each file's second field, skipping values made only of decimal
// digits. It writes no tables: the ones shipped in
// internal/casefold and internal/casemap are a hand-curated subset
// (ASCII, Latin-1, Latin Extended-A, Greek, Greek Extended, Cyrillic)
// that is maintained by hand, and the counts are a check when
// reconciling that subset against a newer Unicode version.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"unicode"
)

type source struct {
	url  string
	name string
}

func main() {
	sources := []source{
		{
			url:  "https://www.unicode.org/Public/" + unicode.Version + "/ucd/CaseFolding.txt",
			name: "CaseFolding",
		},
		{
			url:  "https://www.unicode.org/Public/" + unicode.Version + "/ucd/SpecialCasing.txt",
			name: "SpecialCasing",
		},
	}

	for _, s := range sources {
		if err := fetchAndSummarize(s); err != nil {
			fmt.Fprintf(os.Stderr, "gentables: %s: %v\n", s.name, err)
			os.Exit(1)
		}
	}
}

// fetchAndSummarize downloads a UCD data file and prints a per-status
// row count, as a sanity check before hand-reconciling the curated
// tables against a new Unicode version. It intentionally does not
// overwrite internal/casefold or internal/casemap directly: the shipped
// tables are a deliberate subset, not a full mirror.
func fetchAndSummarize(s source) error {
	resp, err := http.Get(s.url)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	counts := map[string]int{}
	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Split(line, ";")
		if len(fields) < 2 {
			continue
		}
		status := strings.TrimSpace(fields[1])
		counts[status]++
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return err
	}

	fmt.Printf("%s (%s):\n", s.name, s.url)
	for status, n := range counts {
		if _, err := strconv.Atoi(status); err == nil {
			continue // SpecialCasing's codepoint-keyed rows, not a status column
		}
		fmt.Printf("  %s: %d rows\n", status, n)
	}
	return nil
}
