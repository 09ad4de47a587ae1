package compress

import (
	"bytes"
	"fmt"
	"testing"
)

func BenchmarkAllCodecs_Compress(b *testing.B) {
	payloads := map[string][]byte{
		"id_run_16KB": idRunPayload(4096),
		"text_16KB":   bytes.Repeat([]byte("groonga record text "), 820),
	}

	for codecName, codec := range getAllCodecs() {
		for payloadName, data := range payloads {
			b.Run(fmt.Sprintf("%s/%s", codecName, payloadName), func(b *testing.B) {
				b.SetBytes(int64(len(data)))
				b.ReportAllocs()

				for b.Loop() {
					if _, err := codec.Compress(data); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkAllCodecs_Decompress(b *testing.B) {
	data := idRunPayload(4096)

	for codecName, codec := range getAllCodecs() {
		compressed, err := codec.Compress(data)
		if err != nil {
			b.Fatal(err)
		}

		b.Run(codecName, func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			b.ReportAllocs()

			for b.Loop() {
				if _, err := Decompress(codec, compressed, len(data)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
