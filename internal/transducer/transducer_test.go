package transducer

import "testing"

func TestFromDirectCode(t *testing.T) {
	line, err := FromDirectCode("-==x =-=")
	if err != nil {
		t.Fatalf("FromDirectCode: %v", err)
	}
	if len(line.Words) != 2 {
		t.Fatalf("len(Words) = %d, want 2", len(line.Words))
	}
	if line.Words[0].Surface != "-==x" || line.Words[0].Codes[0] != "-==x" {
		t.Errorf("word 0 = %+v, want Surface/Codes[0] = \"-==x\"", line.Words[0])
	}
	if line.Words[1].Surface != "=-=" {
		t.Errorf("word 1 surface = %q, want \"=-=\"", line.Words[1].Surface)
	}
}

func TestFromDirectCodeRejectsBadCharacters(t *testing.T) {
	if _, err := FromDirectCode("-==q"); err == nil {
		t.Fatal("expected an error for a code with an invalid character")
	}
}

func TestFromDirectCodeRejectsEmpty(t *testing.T) {
	if _, err := FromDirectCode(""); err == nil {
		t.Fatal("expected an error for an empty line")
	}
}

func TestFromCodes(t *testing.T) {
	line := FromCodes("orig", []WordCodes{
		{Surface: "a", Codes: []string{"-="}, GraftCodes: []string{"=-"}},
	})
	if line.Original != "orig" {
		t.Errorf("Original = %q, want \"orig\"", line.Original)
	}
	if len(line.Words) != 1 || line.Words[0].Surface != "a" {
		t.Fatalf("Words = %+v", line.Words)
	}
	all := line.Words[0].AllCodes()
	if len(all) != 2 || all[0] != "-=" || all[1] != "=-" {
		t.Errorf("AllCodes() = %v, want [\"-=\" \"=-\"]", all)
	}
}

func TestSplitWords(t *testing.T) {
	words := SplitWords("ہزج مثمن, سالم")
	if len(words) != 3 {
		t.Fatalf("SplitWords = %v, want 3 word tokens (punctuation dropped)", words)
	}
}
