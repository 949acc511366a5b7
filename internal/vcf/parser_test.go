package vcf

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleVCF = `##fileformat=VCFv4.2
##contig=<ID=seq1,length=10>
#CHROM	POS	ID	REF	ALT	QUAL	FILTER	INFO
seq1	3	rs1	G	C	50	PASS	DP=10
seq1	1	.	A	T,G	.	.	.
seq1	5	.	G	C	.	LowQual	.
chrseq2	4	.	AC	A	.	PASS	.
`

func TestParser_Records(t *testing.T) {
	p, err := NewParserFromReader(strings.NewReader(sampleVCF))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}

	if got := p.LineNumber(); got != 3 {
		t.Errorf("Expected 3 header lines read, got %d", got)
	}

	v, err := p.Next()
	if err != nil {
		t.Fatalf("Failed to read variant: %v", err)
	}
	if v == nil {
		t.Fatal("Expected a variant, got nil")
	}
	if v.Chrom != "seq1" || v.Pos != 3 || v.Ref != "G" || v.Alt != "C" || v.ID != "rs1" {
		t.Errorf("Unexpected variant %+v", v)
	}
	if v.Token() != "G3C" {
		t.Errorf("Expected token G3C, got %s", v.Token())
	}

	count := 1
	for {
		v, err := p.Next()
		if err != nil {
			t.Fatalf("Error reading variant: %v", err)
		}
		if v == nil {
			break
		}
		count++
	}
	if count != 4 {
		t.Errorf("Expected 4 records, got %d", count)
	}
	if got := p.LineNumber(); got != 7 {
		t.Errorf("Expected 7 lines read, got %d", got)
	}
}

func TestParser_MissingHeader(t *testing.T) {
	_, err := NewParserFromReader(strings.NewReader("seq1\t3\t.\tG\tC\t.\t.\t.\n"))
	if err == nil {
		t.Fatal("Expected error for missing #CHROM header")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("Expected *ParseError, got %T", err)
	}
}

func TestParser_BadPosition(t *testing.T) {
	p, err := NewParserFromReader(strings.NewReader("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\nseq1\tx\t.\tG\tC\t.\t.\t.\n"))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	if _, err := p.Next(); err == nil {
		t.Error("Expected error for invalid position")
	}
}

func TestParser_NoTrailingNewline(t *testing.T) {
	p, err := NewParserFromReader(strings.NewReader("#CHROM\tPOS\tID\tREF\tALT\tQUAL\tFILTER\tINFO\nseq1\t2\t.\tC\tT\t.\t.\t."))
	if err != nil {
		t.Fatalf("Failed to create parser: %v", err)
	}
	v, err := p.Next()
	if err != nil || v == nil {
		t.Fatalf("Expected final record, got %v, %v", v, err)
	}
	if v.Token() != "C2T" {
		t.Errorf("Expected C2T, got %s", v.Token())
	}
}

func TestSplitMultiAllelic(t *testing.T) {
	v := &Variant{Chrom: "1", Pos: 7, Ref: "A", Alt: "T,G"}
	split := SplitMultiAllelic(v)
	if len(split) != 2 {
		t.Fatalf("Expected 2 variants, got %d", len(split))
	}
	if split[0].Token() != "A7T" || split[1].Token() != "A7G" {
		t.Errorf("Unexpected tokens %s, %s", split[0].Token(), split[1].Token())
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		name string
		opts TokenOptions
		want string
	}{
		{"all records", TokenOptions{}, "G3C,A1T,A1G,G5C,AC4A"},
		{"pass only", TokenOptions{PassOnly: true}, "G3C,A1T,A1G,AC4A"},
		{"chromosome", TokenOptions{Chrom: "seq2"}, "AC4A"},
		{"chr prefixed chromosome", TokenOptions{Chrom: "chrseq1"}, "G3C,A1T,A1G,G5C"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewParserFromReader(strings.NewReader(sampleVCF))
			if err != nil {
				t.Fatalf("Failed to create parser: %v", err)
			}
			tokens, err := Tokens(p, tt.opts)
			if err != nil {
				t.Fatalf("Tokens failed: %v", err)
			}
			if got := strings.Join(tokens, ","); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestTokens_GzipFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calls.vcf.gz")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	gz := gzip.NewWriter(f)
	if _, err := gz.Write([]byte(sampleVCF)); err != nil {
		t.Fatal(err)
	}
	gz.Close()
	f.Close()

	p, err := NewParser(path)
	if err != nil {
		t.Fatalf("Failed to open gzipped VCF: %v", err)
	}
	defer p.Close()

	tokens, err := Tokens(p, TokenOptions{PassOnly: true, Chrom: "seq1"})
	if err != nil {
		t.Fatalf("Tokens failed: %v", err)
	}
	if got := strings.Join(tokens, ","); got != "G3C,A1T,A1G" {
		t.Errorf("Expected G3C,A1T,A1G, got %s", got)
	}
}

func TestLooksLikeVCF(t *testing.T) {
	tests := []struct {
		path string
		head string
		want bool
	}{
		{"calls.vcf", "", true},
		{"calls.VCF.gz", "", true},
		{"muts.txt", "", false},
		{"-", "##fileformat=VCFv4.2\n", true},
		{"-", "#CHROM\tPOS\n", true},
		{"-", "G3C,A1T", false},
	}

	for _, tt := range tests {
		if got := LooksLikeVCF(tt.path, tt.head); got != tt.want {
			t.Errorf("LooksLikeVCF(%q, %q) = %v, want %v", tt.path, tt.head, got, tt.want)
		}
	}
}
