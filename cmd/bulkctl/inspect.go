package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/arloliu/grnbulk/endian"
	"github.com/arloliu/grnbulk/section"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [FILE]",
		Short: "Print the header of a frame",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}

			return runInspect(cmd.InOrStdin(), cmd.OutOrStdout(), path)
		},
	}
}

func runInspect(stdin io.Reader, stdout io.Writer, path string) error {
	data, err := readInput(stdin, path)
	if err != nil {
		return err
	}

	header, err := section.ParseFrameHeader(data)
	if err != nil {
		return err
	}

	byteOrder := "little-endian"
	if header.Flag.IsBigEndian() {
		byteOrder = "big-endian"
	}
	if endian.CompareNativeEndian(header.Flag.GetEndianEngine()) {
		byteOrder += " (host)"
	} else {
		byteOrder += " (foreign, decode needs a matching reader)"
	}

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "object\t%s\n", header.Flag.Object())
	fmt.Fprintf(w, "byte order\t%s\n", byteOrder)
	fmt.Fprintf(w, "compression\t%s\n", header.Flag.Compression())
	fmt.Fprintf(w, "domain\t%d\n", header.Domain)
	fmt.Fprintf(w, "count\t%d\n", header.Count)
	fmt.Fprintf(w, "payload\t%d bytes (%d stored)\n", header.PayloadSize, len(data)-section.PayloadOffset)
	fmt.Fprintf(w, "checksum\t%016x\n", header.Checksum)

	return w.Flush()
}
