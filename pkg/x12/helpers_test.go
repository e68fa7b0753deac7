package x12_test

import (
	"strings"
	"testing"

	"github.com/865charlesw/x12tools/pkg/x12"
)

// isaLine is a fully padded interchange control header: 105 bytes of tag,
// elements, and separators, with the segment terminator landing at byte 105.
const isaLine = "ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *240101*1200*U*00401*000000001*0*P*:"

// sampleLines are the segments of a small but structurally complete 835
// remittance interchange. SE counts are already accurate so that rendering
// the parsed document reproduces the payload byte for byte.
func sampleLines() []string {
	return []string{
		isaLine,
		"GS*HP*SENDER*RECEIVER*20240101*1200*1*X*004010X091A1",
		"ST*835*0001",
		"BPR*I*100*C*CHK",
		"TRN*1*12345*1512345678",
		"N1*PR*ACME INSURANCE",
		"N1*PE*MERCY HOSPITAL",
		"SE*6*0001",
		"GE*1*1",
		"IEA*1*000000001",
	}
}

// samplePayload joins the sample segments into a compact payload with a
// trailing terminator and no newlines.
func samplePayload() string {
	return strings.Join(sampleLines(), "~") + "~"
}

func parseSample(t *testing.T) *x12.Document {
	t.Helper()

	doc, err := x12.Parse(samplePayload())
	if err != nil {
		t.Fatalf("parse sample payload: %v", err)
	}

	return doc
}

func segmentStrings(doc *x12.Document) [][]string {
	out := make([][]string, 0, doc.Len())
	for _, seg := range doc.Segments() {
		out = append(out, []string(seg))
	}

	return out
}
