package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arloliu/grnbulk/bulk"
	"github.com/arloliu/grnbulk/format"
	"github.com/arloliu/grnbulk/value"
)

// kindDomains is the domain a scalar kind is tagged with when --domain is not given.
var kindDomains = map[string]format.ID{
	"text":   format.DomainText,
	"int32":  format.DomainInt32,
	"uint32": format.DomainUInt32,
	"int64":  format.DomainInt64,
	"float":  format.DomainFloat,
	"time":   format.DomainTime,
}

type encodeOptions struct {
	*globalOptions
	kind        string
	value       string
	domain      string
	compression string
	output      string
}

func newEncodeCommand(global *globalOptions) *cobra.Command {
	opts := encodeOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "encode --kind KIND --value VALUE",
		Short: "Encode a scalar value into a bulk frame",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncode(cmd.OutOrStdout(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.kind, "kind", "k", "text", "Value kind: text, int32, uint32, int64, float, time or record")
	flags.StringVar(&opts.value, "value", "", "Value to encode; time accepts RFC 3339 or unix seconds")
	flags.StringVarP(&opts.domain, "domain", "d", "", "Domain id or name; defaults to the kind's built-in domain")
	flags.StringVarP(&opts.compression, "compression", "c", "none", "Payload compression: none, zstd, s2 or lz4")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")

	return cmd
}

func runEncode(stdout io.Writer, opts encodeOptions) error {
	registry, err := buildRegistry(opts.tables)
	if err != nil {
		return err
	}

	v, err := parseValue(opts.kind, opts.value)
	if err != nil {
		return err
	}

	domainID, ok := kindDomains[opts.kind]
	if opts.domain != "" {
		if domainID, err = resolveDomain(registry, opts.domain); err != nil {
			return err
		}
	} else if !ok {
		return fmt.Errorf("kind %s needs --domain", opts.kind)
	}

	enc, err := bulk.NewEncoder()
	if err != nil {
		return err
	}
	b, err := enc.EncodeAs(v, domainID)
	if err != nil {
		return err
	}

	return writeFrame(stdout, opts.output, b, opts.compression)
}

func parseValue(kind, s string) (any, error) {
	switch kind {
	case "text":
		return s, nil
	case "int32":
		n, err := strconv.ParseInt(s, 10, 32)
		return value.Int32(n), err
	case "uint32":
		n, err := strconv.ParseUint(s, 10, 32)
		return value.UInt32(n), err
	case "int64":
		n, err := strconv.ParseInt(s, 10, 64)
		return value.Int64(n), err
	case "float":
		f, err := strconv.ParseFloat(s, 64)
		return f, err
	case "time":
		if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
			return time.Unix(sec, 0), nil
		}
		return time.Parse(time.RFC3339Nano, s)
	case "record":
		id, err := parseID(s)
		return value.Record{ID: id}, err
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

type encodeIDsOptions struct {
	*globalOptions
	vector      bool
	uvector     bool
	compression string
	output      string
}

func newEncodeIDsCommand(global *globalOptions) *cobra.Command {
	opts := encodeIDsOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "encode-ids (--vector | --uvector) ID[,ID...]",
		Short: "Encode record ids into a vector or uvector frame",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEncodeIDs(cmd.OutOrStdout(), opts, args[0])
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.vector, "vector", false, "Write a vector")
	flags.BoolVar(&opts.uvector, "uvector", false, "Write a uvector")
	flags.StringVarP(&opts.compression, "compression", "c", "none", "Payload compression: none, zstd, s2 or lz4")
	flags.StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.MarkFlagsMutuallyExclusive("vector", "uvector")
	cmd.MarkFlagsOneRequired("vector", "uvector")

	return cmd
}

func runEncodeIDs(stdout io.Writer, opts encodeIDsOptions, list string) error {
	var values []any
	for field := range strings.SplitSeq(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		id, err := parseID(field)
		if err != nil {
			return err
		}
		values = append(values, id)
	}

	enc, err := bulk.NewEncoder()
	if err != nil {
		return err
	}

	var obj bulk.Object
	if opts.vector {
		obj, err = enc.EncodeVector(values)
	} else {
		obj, err = enc.EncodeUVector(values)
	}
	if err != nil {
		return err
	}

	return writeFrame(stdout, opts.output, obj, opts.compression)
}

func parseID(s string) (format.ID, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return format.NilID, fmt.Errorf("invalid id %q: %w", s, err)
	}

	return format.ID(n), nil
}

func writeFrame(stdout io.Writer, path string, obj bulk.Object, compression string) error {
	comp, ok := format.ParseCompressionType(compression)
	if !ok {
		return fmt.Errorf("unknown compression %q", compression)
	}

	if path == "" || path == "-" {
		_, err := bulk.MarshalTo(stdout, obj, bulk.WithFrameCompression(comp))
		return err
	}

	frame, err := bulk.Marshal(obj, bulk.WithFrameCompression(comp))
	if err != nil {
		return err
	}

	return os.WriteFile(path, frame, 0o644)
}
