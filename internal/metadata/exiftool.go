package metadata

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// ExifTool talks to one exiftool process started with "-stay_open True".
//
// Each request is written as one argument per line followed by "-execute";
// exiftool answers and terminates the answer with a "{ready}" line. Requests
// are serialized with a mutex, so an ExifTool may be shared.
//
// Example:
//
//	et, err := NewExifTool("exiftool", logger)
//	if err != nil {
//	    return err
//	}
//	defer et.Close()
//
//	err = et.Write("a.jpg", []string{"Another Tag", "Martin Ueding"})
type ExifTool struct {
	mu     sync.Mutex
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
	logger *log.Logger
}

// NewExifTool starts the exiftool binary at bin in stay-open mode.
func NewExifTool(bin string, logger *log.Logger) (*ExifTool, error) {
	if bin == "" {
		bin = "exiftool"
	}
	cmd := exec.Command(bin, "-stay_open", "True", "-@", "-")

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("exiftool stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("exiftool stdout pipe: %w", err)
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, fmt.Errorf("exiftool stderr pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w", bin, err)
	}

	go func() {
		scanner := bufio.NewScanner(stderr)
		for scanner.Scan() {
			logger.Warn("exiftool", "stderr", scanner.Text())
		}
	}()

	logger.Debug("started exiftool", "bin", bin, "pid", cmd.Process.Pid)

	return &ExifTool{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewScanner(stdout),
		logger: logger,
	}, nil
}

// Execute sends one request and returns everything exiftool printed before
// the "{ready}" marker.
func (et *ExifTool) Execute(args ...string) (string, error) {
	et.mu.Lock()
	defer et.mu.Unlock()

	et.logger.Debug("exiftool request", "args", args)

	for _, arg := range args {
		if strings.ContainsAny(arg, "\r\n") {
			return "", fmt.Errorf("exiftool argument %q contains a line break", arg)
		}
		if _, err := fmt.Fprintln(et.stdin, arg); err != nil {
			return "", fmt.Errorf("writing exiftool argument: %w", err)
		}
	}
	if _, err := fmt.Fprintln(et.stdin, "-execute"); err != nil {
		return "", fmt.Errorf("writing exiftool execute: %w", err)
	}

	var out strings.Builder
	for et.stdout.Scan() {
		line := et.stdout.Text()
		if strings.HasPrefix(line, "{ready") {
			return out.String(), nil
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	if err := et.stdout.Err(); err != nil {
		return "", fmt.Errorf("reading exiftool output: %w", err)
	}
	return "", errors.New("exiftool exited unexpectedly")
}

// Read returns the IPTC keywords of path.
func (et *ExifTool) Read(path string) ([]string, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	out, err := et.Execute("-json", "-charset", "iptc=UTF8", "-IPTC:Keywords", path)
	if err != nil {
		return nil, err
	}
	keywords, err := parseKeywordsJSON(out)
	if err != nil {
		return nil, fmt.Errorf("keywords of %s: %w", path, err)
	}
	return keywords, nil
}

// Write replaces the IPTC keywords of path. The file is modified in place.
func (et *ExifTool) Write(path string, keywords []string) error {
	args := writeArgs(path, keywords)
	out, err := et.Execute(args...)
	if err != nil {
		return err
	}
	if !writeSucceeded(out) {
		return fmt.Errorf("exiftool could not update %s: %s", path, strings.TrimSpace(out))
	}
	et.logger.Debug("wrote keywords", "path", path, "keywords", keywords)
	return nil
}

// Close ends the stay-open session and waits for the process to exit.
func (et *ExifTool) Close() error {
	et.mu.Lock()
	defer et.mu.Unlock()

	if _, err := fmt.Fprintln(et.stdin, "-stay_open"); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(et.stdin, "False"); err != nil {
		return err
	}
	if err := et.stdin.Close(); err != nil {
		return err
	}
	return et.cmd.Wait()
}

// writeArgs builds the request that sets the keyword list to exactly keywords.
// Assigning a list tag several times in one command replaces the old list;
// a single empty assignment deletes it.
func writeArgs(path string, keywords []string) []string {
	args := []string{
		"-overwrite_original",
		"-charset", "iptc=UTF8",
		"-IPTC:CodedCharacterSet=UTF8",
	}
	if len(keywords) == 0 {
		args = append(args, "-IPTC:Keywords=")
	}
	for _, k := range keywords {
		args = append(args, "-IPTC:Keywords="+k)
	}
	return append(args, path)
}

// writeSucceeded interprets the summary exiftool prints after a write.
func writeSucceeded(out string) bool {
	if strings.Contains(out, "weren't updated") {
		return false
	}
	return strings.Contains(out, "image files updated") || strings.Contains(out, "image files unchanged")
}

// parseKeywordsJSON extracts the Keywords entry of exiftool's -json output.
// exiftool prints a single keyword as a scalar and numeric keywords as
// numbers.
func parseKeywordsJSON(out string) ([]string, error) {
	var records []struct {
		Keywords json.RawMessage `json:"Keywords"`
	}
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		return nil, fmt.Errorf("decoding exiftool output: %w", err)
	}
	if len(records) == 0 || len(records[0].Keywords) == 0 {
		return nil, ErrNotFound
	}

	var values []any
	if err := json.Unmarshal(records[0].Keywords, &values); err != nil {
		var single any
		if err := json.Unmarshal(records[0].Keywords, &single); err != nil {
			return nil, fmt.Errorf("decoding keywords: %w", err)
		}
		values = []any{single}
	}

	keywords := make([]string, 0, len(values))
	for _, v := range values {
		switch v := v.(type) {
		case string:
			keywords = append(keywords, v)
		case float64:
			keywords = append(keywords, strconv.FormatFloat(v, 'f', -1, 64))
		case bool:
			keywords = append(keywords, strconv.FormatBool(v))
		}
	}
	return keywords, nil
}
