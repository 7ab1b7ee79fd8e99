package anglicize

import (
	"bytes"
	"testing"
)

func Test_String(t *testing.T) {
	type args struct {
		text string
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{
			name: "empty",
			args: args{""},
			want: "",
		},
		{
			name: "ascii",
			args: args{"abcdefghijklmnopqrstuvwxyz 01234567890 ASCII, THE."},
			want: "abcdefghijklmnopqrstuvwxyz 01234567890 ASCII, THE.",
		},
		{
			name: "cyrillic word",
			args: args{"Япония"},
			want: "Yaponiya",
		},
		{
			name: "title case preserved",
			args: args{"Я говорю"},
			want: "Ya govoryu",
		},
		{
			name: "all caps word",
			args: args{"ЯЩЕРИЦА"},
			want: "YASCHERITSA",
		},
		{
			name: "all caps phrase with space",
			args: args{"Я ЩЕКОЧУ"},
			want: "YA SCHEKOCHU",
		},
		{
			name: "polish title",
			args: args{"Cześć!"},
			want: "Czeshch!",
		},
		{
			name: "polish caps",
			args: args{"CZEŚĆ!"},
			want: "CZESHCH!",
		},
		{
			name: "unrecognized passes through",
			args: args{"¿Adónde?"},
			want: "¿Adonde?",
		},
		{
			name: "greek letter",
			args: args{"γ"},
			want: "g",
		},
		{
			name: "greek capital",
			args: args{"Γ"},
			want: "G",
		},
		{
			name: "greek phrase",
			args: args{"Μιλάω ελληνικά"},
			want: "Milao ellinika",
		},
		{
			name: "greek aspirate",
			args: args{"χαρά"},
			want: "khara",
		},
		{
			name: "greek title",
			args: args{"Ελλάδα"},
			want: "Ellada",
		},
		{
			name: "greek all caps",
			args: args{"ΕΛΛΑΔΑ"},
			want: "ELLADA",
		},
		{
			name: "greek diphthong",
			args: args{"πού"},
			want: "pou",
		},
		{
			name: "greek diphthong in caps word",
			args: args{"ΛΟΥΚΑΣ"},
			want: "LOUKAS",
		},
		{
			name: "longest match falls back",
			args: args{"Ис"},
			want: "Is",
		},
		{
			name: "combining breve",
			args: args{"Йод"},
			want: "Jod",
		},
		{
			name: "soft sign dropped",
			args: args{"мать"},
			want: "mat",
		},
		{
			name: "sharp s",
			args: args{"Straße"},
			want: "Strasse",
		},
		{
			name: "guillemets",
			args: args{"«Привет»"},
			want: `"Privet"`,
		},
		{
			name: "typographic apostrophe",
			args: args{"д’Артаньян"},
			want: "d'Artanyan",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := String(tt.args.text); got != tt.want {
				t.Errorf("String(%q) = %q, want %q", tt.args.text, got, tt.want)
			}
		})
	}
}

func Test_Process_buffering(t *testing.T) {
	a := New()

	chunk1 := append([]byte("Μιλάω "), []byte("ε")[0])
	chunk2 := append([]byte("ε")[1:], []byte("λληνικά")...)

	output := a.Process(chunk1)
	output = append(output, a.Process(chunk2)...)
	output = append(output, a.Finalize()...)

	if got := string(output); got != "Milao ellinika" {
		t.Errorf("chunked output = %q, want %q", got, "Milao ellinika")
	}

	output = a.Process([]byte("Ja "))
	output = append(output, a.Process([]byte("mówie "))...)
	output = append(output, a.Process([]byte("po polsku."))...)
	output = append(output, a.Finalize()...)

	if got := string(output); got != "Ja mowie po polsku." {
		t.Errorf("chunked output = %q, want %q", got, "Ja mowie po polsku.")
	}
}

// Feeding a stream in chunks must produce the same bytes no matter where
// the chunk boundaries fall, including boundaries inside a UTF-8 sequence
// or inside an unresolved capitalization run.
func Test_Process_chunkInvariance(t *testing.T) {
	inputs := []string{
		"Я ЩЕКОЧУ",
		"Μιλάω ελληνικά",
		"¿Adónde?",
		"«Страна Ёлок»",
		"Йод мать",
		"ΛΟΥΚΑΣ και Λούκας",
	}
	for _, input := range inputs {
		raw := []byte(input)
		whole := Bytes(raw)

		for i := 0; i <= len(raw); i++ {
			a := New()
			got := a.Process(raw[:i])
			got = append(got, a.Process(raw[i:])...)
			got = append(got, a.Finalize()...)

			if !bytes.Equal(got, whole) {
				t.Errorf("split of %q at %d = %q, want %q", input, i, got, whole)
			}
		}
	}

	raw := []byte("Ящик")
	whole := Bytes(raw)
	for i := 0; i <= len(raw); i++ {
		for j := i; j <= len(raw); j++ {
			a := New()
			got := a.Process(raw[:i])
			got = append(got, a.Process(raw[i:j])...)
			got = append(got, a.Process(raw[j:])...)
			got = append(got, a.Finalize()...)

			if !bytes.Equal(got, whole) {
				t.Errorf("split of %q at %d,%d = %q, want %q", raw, i, j, got, whole)
			}
		}
	}
}

func Test_Process_emptyChunk(t *testing.T) {
	a := New()

	got := a.Process([]byte("Я гово"))
	if out := a.Process(nil); len(out) != 0 {
		t.Errorf("Process(nil) = %q, want empty", out)
	}
	got = append(got, a.Process([]byte("рю"))...)
	got = append(got, a.Finalize()...)

	if string(got) != "Ya govoryu" {
		t.Errorf("output = %q, want %q", got, "Ya govoryu")
	}
}

func Test_Finalize_drains(t *testing.T) {
	a := New()

	// A confirmed match plus a dangling combining-mark lead byte.
	if out := a.Process([]byte{0xD0, 0x98, 0xCC}); len(out) != 0 {
		t.Errorf("Process = %q, want everything buffered", out)
	}
	if got := string(a.Finalize()); got != "I\xcc" {
		t.Errorf("Finalize = %q, want %q", got, "I\xcc")
	}

	// The instance is ready for a new stream afterwards.
	out := a.Process([]byte("Щука"))
	out = append(out, a.Finalize()...)
	if string(out) != "Schuka" {
		t.Errorf("output after reuse = %q, want %q", out, "Schuka")
	}
}

func Test_Bytes_passThrough(t *testing.T) {
	type args struct {
		text []byte
	}
	tests := []struct {
		name string
		args args
	}{
		{
			name: "binary garbage",
			args: args{[]byte{0x80, 0xFF, 0x00, 'a', 'b', 0xFE}},
		},
		{
			name: "lone lead byte",
			args: args{[]byte{0xD0}},
		},
		{
			name: "truncated sequence before ascii",
			args: args{[]byte{0xE2, 0x80, 'x'}},
		},
		{
			name: "ascii only",
			args: args{[]byte("plain ASCII text, NOTHING else.")},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bytes(tt.args.text); !bytes.Equal(got, tt.args.text) {
				t.Errorf("Bytes(%q) = %q, want input unchanged", tt.args.text, got)
			}
		})
	}
}

func Test_Reset(t *testing.T) {
	a := New()
	a.Process([]byte("Я ЩЕ"))
	a.Reset()

	out := a.Process([]byte("во"))
	out = append(out, a.Finalize()...)
	if string(out) != "vo" {
		t.Errorf("output after Reset = %q, want %q", out, "vo")
	}
}
