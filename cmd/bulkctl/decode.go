package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arloliu/grnbulk/bulk"
	"github.com/arloliu/grnbulk/domain"
	"github.com/arloliu/grnbulk/value"
)

type decodeOptions struct {
	*globalOptions
	rng string
}

func newDecodeCommand(global *globalOptions) *cobra.Command {
	opts := decodeOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "decode [FILE]",
		Short: "Decode the value held by a frame",
		Long: "Decode the value held by a frame. Domains are resolved against the built-in " +
			"domains and the tables given with --table. FILE defaults to stdin.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			return runDecode(cmd.InOrStdin(), cmd.OutOrStdout(), opts, path)
		},
	}

	cmd.Flags().StringVar(&opts.rng, "range", "",
		"Domain id or name back-filled into a bulk whose domain is unset")

	return cmd
}

func runDecode(stdin io.Reader, stdout io.Writer, opts decodeOptions, path string) error {
	registry, err := buildRegistry(opts.tables)
	if err != nil {
		return err
	}

	data, err := readInput(stdin, path)
	if err != nil {
		return err
	}

	obj, err := bulk.Unmarshal(data)
	if err != nil {
		return err
	}

	var rng *domain.Descriptor
	if opts.rng != "" {
		id, err := resolveDomain(registry, opts.rng)
		if err != nil {
			return err
		}
		d, err := domain.Get(registry, id)
		if err != nil {
			return err
		}
		rng = &d
	}

	dec, err := bulk.NewDecoder(registry)
	if err != nil {
		return err
	}

	v, err := dec.DecodeObject(obj, rng)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(stdout, "%s %s\n", v.Kind(), formatValue(v))

	return err
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}

func formatValue(v value.Value) string {
	switch v := v.(type) {
	case value.Absent:
		return "-"
	case value.Text:
		return strconv.Quote(string(v))
	case value.Timestamp:
		return v.Time().Format("2006-01-02T15:04:05.000000Z07:00")
	case value.Record:
		return fmt.Sprintf("table=%d id=%d", v.Table, v.ID)
	case value.Elements:
		parts := make([]string, len(v))
		for i, el := range v {
			parts[i] = fmt.Sprintf("%x/%d", el.Bytes, el.Weight)
		}

		return "[" + strings.Join(parts, " ") + "]"
	case value.IDs:
		parts := make([]string, len(v))
		for i, id := range v {
			parts[i] = strconv.FormatUint(uint64(id), 10)
		}

		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprint(v)
	}
}
