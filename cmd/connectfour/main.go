//
// MIT License
//
// Copyright (c) 2026 The Connect Four Engine Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package main

import (
	"bufio"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/connectfour-dev/connectfour/internal/agent"
	"github.com/connectfour-dev/connectfour/internal/analyzer"
	"github.com/connectfour-dev/connectfour/internal/cache"
	"github.com/connectfour-dev/connectfour/internal/config"
	"github.com/connectfour-dev/connectfour/internal/game"
	"github.com/connectfour-dev/connectfour/internal/logging"
	"github.com/connectfour-dev/connectfour/internal/search"
)

var out = message.NewPrinter(language.German)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "", "standard log level\n(off|critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(off|critical|error|warning|notice|info|debug)")
	useBook := flag.Bool("book", false, "load the opening book before playing")
	bookPath := flag.String("bookpath", "", "path to the opening book binary file")
	cpuProfile := flag.Bool("profile", false, "write a CPU profile of this run to ./")
	perftDepth := flag.Int("perft", -1, "run perft at the given depth on the empty board and exit")
	evaluate := flag.String("evaluate", "", "evaluate the position reached by this 1-indexed move string and exit")
	play := flag.String("play", "", "interactively continue a game starting from this 1-indexed move string")
	aiDifficulty := flag.String("ai", "", "have the agent play the side to move\n(random|easy|moderate|advanced|perfect)")
	verbose := flag.Bool("verbose", false, "print the resolved configuration on startup")
	flag.Parse()

	config.ConfFile = *configFile
	config.Setup()

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	if *useBook {
		config.Settings.Book.UseBook = true
	}
	if *bookPath != "" {
		config.Settings.Book.BookPath = *bookPath
	}

	logging.GetLog()

	if *verbose {
		out.Println(config.Settings.String())
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	if *perftDepth >= 0 {
		runPerft(*perftDepth)
		return
	}

	engine := newEngine()

	if *evaluate != "" {
		runEvaluate(engine, *evaluate)
		return
	}

	runInteractive(engine, *play, *aiDifficulty)
}

func newEngine() *search.Engine {
	if !config.Settings.Book.UseBook {
		return search.New(config.Settings.Cache.StartCapacity)
	}

	data, err := os.ReadFile(config.Settings.Book.BookPath)
	if err != nil {
		out.Println("opening book not loaded:", err)
		return search.New(config.Settings.Cache.StartCapacity)
	}

	book, err := cache.LoadBook(data)
	if err != nil {
		out.Println("opening book malformed, continuing without it:", err)
		return search.New(config.Settings.Cache.StartCapacity)
	}

	return search.WithOpeningBook(book, config.Settings.Cache.StartCapacity)
}

func runPerft(depth int) {
	now := time.Now()
	count := game.Perft(depth)
	out.Printf("perft(%d) = %d (%s)\n", depth, count, time.Since(now))
}

func runEvaluate(engine *search.Engine, moves string) {
	g := game.New()
	if err := g.PlayString(moves); err != nil {
		out.Println("invalid move string:", err)
		return
	}

	now := time.Now()
	score := engine.Evaluate(g.Position())
	out.Printf("evaluate(%q) = %+d  (%d nodes, %s)\n", moves, score, engine.NodeCount(), time.Since(now))
}

func runInteractive(engine *search.Engine, startMoves string, aiDifficultyName string) {
	g := game.New()
	if startMoves != "" {
		if err := g.PlayString(startMoves); err != nil {
			out.Println("invalid move string:", err)
			return
		}
	}

	var aiAgent *agent.Agent
	if aiDifficultyName != "" {
		aiAgent = agent.New(parseDifficulty(aiDifficultyName))
	}

	reader := bufio.NewReader(os.Stdin)

	for {
		out.Println(g)

		status := g.StatusOf()
		if status.IsWin {
			out.Printf("Player %s won!\n", status.Winner)
			return
		}
		if status.Draw {
			out.Println("Draw game!")
			return
		}

		a := analyze(engine, g)

		if aiAgent != nil {
			col := aiAgent.ChooseMove(a)
			if err := g.Play(col); err != nil {
				out.Println("agent move rejected:", err)
				return
			}
			out.Printf("AI plays column %d\n", col+1)
			continue
		}

		out.Print(g.Turn(), " > ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch line {
		case "a", "analyze":
			printAnalysis(a)
		case "u", "undo":
			if col := g.Undo(); col >= 0 {
				out.Printf("undid column %d\n", col+1)
			} else {
				out.Println("no moves to undo")
			}
		default:
			if err := g.PlayString(line); err != nil {
				out.Println(err)
			}
		}
	}
}

func analyze(engine *search.Engine, g *game.Game) analyzer.Analysis {
	scores := engine.EvaluateNext(g.Position())
	return analyzer.New(scores, g.Turn(), g.Position().Ply())
}

func printAnalysis(a analyzer.Analysis) {
	for _, s := range a.Scores {
		if s == nil {
			out.Print("  . ")
			continue
		}
		out.Printf("%+4d", *s)
	}
	out.Println()
}

func parseDifficulty(name string) agent.Difficulty {
	switch strings.ToLower(name) {
	case "easy":
		return agent.Easy
	case "moderate":
		return agent.Moderate
	case "advanced":
		return agent.Advanced
	case "perfect":
		return agent.Perfect
	default:
		return agent.Random
	}
}
