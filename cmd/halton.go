package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/achilleasa/sampletrace/sampler"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Print the first elements of the Halton sequence for one or more bases.
func Halton(ctx *cli.Context) error {
	if err := setupLogging(ctx); err != nil {
		return err
	}

	bases, err := parseBases(ctx.String("bases"))
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	writeHaltonTable(&buf, uint32(ctx.Int("count")), bases)
	logger.Noticef("halton sequence\n%s", buf.String())
	return nil
}

func parseBases(list string) ([]uint32, error) {
	var bases []uint32
	for _, token := range strings.Split(list, ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		base, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid base %q: %w", token, err)
		}
		if base < 2 {
			return nil, fmt.Errorf("invalid base %d: must be at least 2", base)
		}
		bases = append(bases, uint32(base))
	}
	if len(bases) == 0 {
		return nil, fmt.Errorf("no bases specified")
	}
	return bases, nil
}

func writeHaltonTable(w io.Writer, count uint32, bases []uint32) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)

	header := []string{"Index"}
	for _, base := range bases {
		header = append(header, fmt.Sprintf("Base %d", base))
	}
	table.SetHeader(header)

	for index := uint32(0); index < count; index++ {
		row := []string{fmt.Sprintf("%d", index)}
		for _, base := range bases {
			row = append(row, fmt.Sprintf("%.6f", sampler.Halton(index, base)))
		}
		table.Append(row)
	}
	table.Render()
}
