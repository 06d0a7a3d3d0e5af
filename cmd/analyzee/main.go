package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/graeme-hill/analyzee-go/lib"
	"github.com/peterh/liner"
)

const (
	historyFile = ".analyzee_history"
	helpText    = `Type a statement to run the current check on it.
  :lexeme [line]     switch to lexeme checks, or run one on line
  :syntax [line]     switch to syntax checks, or run one on line
  :semantics [line]  switch to semantic checks, or run one on line
  :symbols           print the symbol table
  :declared          print identifiers seen by lexeme checks
  :history [n]       print the last n checks (default 10)
  :reset             start a fresh session
  :quit              exit`
)

type checkHistory interface {
	lib.Recorder
	Recent(ctx context.Context, limit int) ([]lib.Entry, error)
}

func main() {
	check := flag.String("check", "", "run this check (lexeme, syntax, semantics) on each line of stdin and exit")
	conn := flag.String("db", os.Getenv("ANALYZEE_DB"), "postgres connection string for check history (default $ANALYZEE_DB)")
	flag.Parse()

	var history checkHistory = lib.NewMemoryHistory()
	if len(*conn) > 0 {
		pg, err := lib.OpenPostgresHistory(*conn)
		if err != nil {
			log.Fatal(err)
		}
		defer pg.Close()
		history = pg
	}

	analyzer := lib.NewAnalyzer(lib.NewSession(), history)
	ctx := context.Background()

	if len(*check) > 0 {
		os.Exit(runScript(ctx, analyzer, lib.Selector(*check), os.Stdin, os.Stdout))
	}
	repl(ctx, analyzer, history)
}

// runScript checks every line read from in. The exit code is 1 if any check
// failed.
func runScript(ctx context.Context, analyzer *lib.Analyzer, sel lib.Selector, in io.Reader, out io.Writer) int {
	code := 0
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		report, err := analyzer.Run(ctx, sel, scanner.Text())
		if err != nil {
			log.Print(err)
		}
		fmt.Fprintln(out, strings.TrimRight(report.String(), "\n"))
		if !report.OK {
			code = 1
		}
	}
	if err := scanner.Err(); err != nil {
		log.Print(err)
		return 2
	}
	return code
}

func repl(ctx context.Context, analyzer *lib.Analyzer, history checkHistory) {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	fmt.Println("analyzee: type :help for commands, Ctrl+D to exit")
	sel := lib.SelectSemantics

	for {
		line, err := ln.Prompt(string(sel) + "> ")
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Println()
			return
		}
		if err != nil {
			log.Print(err)
			return
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		ln.AppendHistory(line)

		if !strings.HasPrefix(line, ":") {
			printReport(ctx, analyzer, sel, line)
			continue
		}

		cmd, rest := splitCommand(line)
		switch cmd {
		case ":quit", ":q":
			return
		case ":help":
			fmt.Println(helpText)
		case ":lexeme", ":syntax", ":semantics":
			target := lib.Selector(strings.TrimPrefix(cmd, ":"))
			if len(rest) == 0 {
				sel = target
				continue
			}
			printReport(ctx, analyzer, target, rest)
		case ":symbols":
			for _, sym := range analyzer.Session().Symbols() {
				fmt.Printf("%s %s\n", sym.Type, sym.Name)
			}
		case ":declared":
			fmt.Println(strings.Join(analyzer.Session().DeclaredVariables(), " "))
		case ":history":
			printHistory(ctx, history, rest)
		case ":reset":
			analyzer.Session().Reset()
		default:
			fmt.Println("unknown command. Type :help for a list.")
		}
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	if len(parts) == 1 {
		return strings.ToLower(parts[0]), ""
	}
	return strings.ToLower(parts[0]), strings.TrimSpace(parts[1])
}

func printReport(ctx context.Context, analyzer *lib.Analyzer, sel lib.Selector, line string) {
	report, err := analyzer.Run(ctx, sel, line)
	if err != nil {
		log.Print(err)
	}
	fmt.Println(strings.TrimRight(report.String(), "\n"))
}

func printHistory(ctx context.Context, history checkHistory, arg string) {
	limit := 10
	if len(arg) > 0 {
		if _, err := fmt.Sscanf(arg, "%d", &limit); err != nil {
			fmt.Println("usage: :history [n]")
			return
		}
	}

	entries, err := history.Recent(ctx, limit)
	if err != nil {
		log.Print(err)
		return
	}
	for _, e := range entries {
		status := "ok"
		if !e.OK {
			status = "fail"
		}
		fmt.Printf("%s %-9s %-4s %s\n", e.CheckedAt.Format("15:04:05"), e.Selector, status, e.Input)
	}
}
