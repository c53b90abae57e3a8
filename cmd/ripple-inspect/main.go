// Command ripple-inspect builds a ripple field from point data and prints
// delay statistics, optionally writing charts.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"ripplefield/internal/core"
	"ripplefield/internal/report"
	"ripplefield/internal/ripple"
	"ripplefield/internal/source"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

func main() {
	data := flag.String("data", "", "point data: file path, - for stdin, or http(s) URL")
	charts := flag.String("charts", "", "directory for envelope, delay and activity charts")
	html := flag.String("html", "", "write an interactive HTML report to this path")
	var overrides kvList
	flag.Var(&overrides, "set", "ripple parameter override in key=value form (repeatable)")
	flag.Parse()

	values := map[string]string{}
	for _, kv := range overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			log.Printf("ignoring override %q", kv)
			continue
		}
		values[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	cfg := ripple.FromMap(values)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	points, err := source.NewLoader().Load(context.Background(), *data)
	if err != nil {
		log.Fatal(err)
	}
	field, err := ripple.Build(points, cfg, core.NewRNG(cfg.Seed))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Field (seed %d):\n", cfg.Seed)
	if err := report.Summarize(field).WriteText(os.Stdout); err != nil {
		log.Fatal(err)
	}
	printParams(field.Parameters())

	if *charts != "" {
		if err := os.MkdirAll(*charts, 0o755); err != nil {
			log.Fatal(err)
		}
		paths, err := report.WriteCharts(field, *charts)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("\nCharts:")
		for _, p := range paths {
			fmt.Printf("  %s\n", p)
		}
	}

	if *html != "" {
		out, err := os.Create(*html)
		if err != nil {
			log.Fatal(err)
		}
		if err := report.WriteHTML(field, out); err != nil {
			out.Close()
			log.Fatal(err)
		}
		if err := out.Close(); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("\nHTML report: %s\n", *html)
	}
}

func printParams(snap core.ParameterSnapshot) {
	fmt.Println("\nParameters:")
	for _, g := range snap.Groups {
		fmt.Printf("  %s\n", g.Name)
		for _, p := range g.Params {
			fmt.Printf("    %s=%s\n", p.Key, p.Value)
		}
	}
}
