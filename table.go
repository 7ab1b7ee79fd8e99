package anglicize

// xlatEntry maps one source byte sequence, written here as a UTF-8
// string, to its ASCII spelling.
type xlatEntry struct {
	from, to string
}

// xlatEntries is the flat correspondence table the trie is built from.
// An empty spelling drops the sequence from the output (the Cyrillic soft
// sign). Sequences that decompose a letter into a base character plus a
// combining mark are listed alongside their precomposed forms, so the
// engine accepts both encodings.
var xlatEntries = []xlatEntry{
	// Guillemets.
	{"«", "\""},
	{"»", "\""},

	// Latin-1 letters and ligatures.
	{"À", "A"},
	{"Á", "A"},
	{"Â", "I"},
	{"Ã", "A"},
	{"Ä", "A"},
	{"Å", "O"},
	{"Æ", "A"},
	{"Ç", "S"},
	{"È", "E"},
	{"É", "E"},
	{"Ê", "E"},
	{"Ë", "Yo"},
	{"Ì", "I"},
	{"Í", "I"},
	{"Î", "I"},
	{"Ð", "D"},
	{"Ñ", "Ny"},
	{"Ñó", "Nyo"},
	{"Ò", "O"},
	{"Ó", "O"},
	{"Ô", "O"},
	{"Õ", "O"},
	{"Ö", "O"},
	{"Ø", "O"},
	{"Ù", "U"},
	{"Ú", "U"},
	{"Û", "U"},
	{"Ü", "U"},
	{"Þ", "Th"},
	{"ß", "ss"},
	{"à", "a"},
	{"á", "a"},
	{"â", "i"},
	{"ã", "a"},
	{"ä", "a"},
	{"å", "o"},
	{"æ", "a"},
	{"ç", "s"},
	{"è", "e"},
	{"é", "e"},
	{"ê", "e"},
	{"ë", "yo"},
	{"ì", "i"},
	{"í", "i"},
	{"î", "i"},
	{"ð", "d"},
	{"ñ", "ny"},
	{"ñó", "nyo"},
	{"ò", "o"},
	{"ó", "o"},
	{"ô", "o"},
	{"õ", "o"},
	{"ö", "o"},
	{"ø", "o"},
	{"ù", "u"},
	{"ú", "u"},
	{"û", "u"},
	{"ü", "u"},
	{"þ", "th"},

	// Polish, Czech and Slovak.
	{"Ă", "A"},
	{"ă", "a"},
	{"Ą", "O"},
	{"ą", "o"},
	{"Ć", "Ch"},
	{"ć", "ch"},
	{"Ę", "E"},
	{"ę", "e"},
	{"Ł", "W"},
	{"ł", "w"},
	{"Ń", "Ny"},
	{"ń", "ny"},
	{"Ś", "Sh"},
	{"ś", "sh"},
	{"Š", "Sh"},
	{"š", "sh"},
	{"Ź", "Zh"},
	{"ź", "zh"},
	{"Ż", "Zh"},
	{"ż", "zh"},
	{"Ž", "S"},
	{"ž", "s"},

	// Romanian comma-below letters.
	{"Ș", "Sh"},
	{"ș", "sh"},
	{"Ț", "Ts"},
	{"ț", "ts"},

	// Cyrillic (Russian and Ukrainian), including the combining-accent forms of Ё, Й and Ї.
	{"Ё", "Yo"},
	{"Є", "Ye"},
	{"І", "I"},
	{"І\u0308", "Yi"},
	{"Ї", "Yi"},
	{"А", "A"},
	{"Б", "B"},
	{"В", "V"},
	{"Г", "G"},
	{"Д", "D"},
	{"Е", "E"},
	{"Е\u0308", "Yo"},
	{"Ж", "Zh"},
	{"З", "Z"},
	{"И", "I"},
	{"И\u0306", "J"},
	{"Й", "J"},
	{"К", "K"},
	{"Л", "L"},
	{"М", "M"},
	{"Н", "N"},
	{"О", "O"},
	{"П", "P"},
	{"Р", "R"},
	{"С", "S"},
	{"Т", "T"},
	{"У", "U"},
	{"Ф", "F"},
	{"Х", "Kh"},
	{"Ц", "Ts"},
	{"Ч", "Ch"},
	{"Ш", "Sh"},
	{"Щ", "Sch"},
	{"Ъ", "'"},
	{"Ы", "Y"},
	{"Ь", ""},
	{"Э", "E"},
	{"Ю", "Yu"},
	{"Я", "Ya"},
	{"а", "a"},
	{"б", "b"},
	{"в", "v"},
	{"г", "g"},
	{"д", "d"},
	{"е", "e"},
	{"е\u0308", "yo"},
	{"ж", "zh"},
	{"з", "z"},
	{"и", "i"},
	{"и\u0306", "j"},
	{"й", "j"},
	{"к", "k"},
	{"л", "l"},
	{"м", "m"},
	{"н", "n"},
	{"о", "o"},
	{"п", "p"},
	{"р", "r"},
	{"с", "s"},
	{"т", "t"},
	{"у", "u"},
	{"ф", "f"},
	{"х", "kh"},
	{"ц", "ts"},
	{"ч", "ch"},
	{"ш", "sh"},
	{"щ", "sch"},
	{"ъ", "'"},
	{"ы", "y"},
	{"ь", ""},
	{"э", "e"},
	{"ю", "yu"},
	{"я", "ya"},
	{"ё", "yo"},
	{"є", "ye"},
	{"і", "i"},
	{"і\u0308", "yi"},
	{"ї", "yi"},

	// Ukrainian ghe with upturn.
	{"Ґ", "G"},
	{"ґ", "g"},

	// Capital sharp s.
	{"ẞ", "Ss"},

	// Typographic quotes and apostrophes.
	{"‘", "'"},
	{"’", "'"},
	{"“", "\""},
	{"”", "\""},

	// Greek, with the ου diphthong spelled as a digraph.
	{"Ά", "A"},
	{"Έ", "E"},
	{"Ή", "I"},
	{"Ί", "I"},
	{"Ό", "O"},
	{"Ύ", "Y"},
	{"Ώ", "O"},
	{"Α", "A"},
	{"Β", "V"},
	{"Γ", "G"},
	{"Δ", "D"},
	{"Ε", "E"},
	{"Ζ", "Z"},
	{"Η", "I"},
	{"Θ", "Th"},
	{"Ι", "I"},
	{"Κ", "K"},
	{"Λ", "L"},
	{"Μ", "M"},
	{"Ν", "N"},
	{"Ξ", "X"},
	{"Ο", "O"},
	{"Π", "P"},
	{"Ρ", "R"},
	{"Σ", "S"},
	{"Τ", "T"},
	{"Υ", "Y"},
	{"Φ", "F"},
	{"Χ", "Kh"},
	{"Ψ", "Ps"},
	{"Ω", "O"},
	{"Ϊ", "I"},
	{"Ϋ", "Y"},
	{"ΟΥ", "OU"},
	{"ΟΎ", "OU"},
	{"Ου", "Ou"},
	{"Ού", "Ou"},
	{"ά", "a"},
	{"έ", "e"},
	{"ή", "i"},
	{"ί", "i"},
	{"ΰ", "y"},
	{"α", "a"},
	{"β", "v"},
	{"γ", "g"},
	{"δ", "d"},
	{"ε", "e"},
	{"ζ", "z"},
	{"η", "i"},
	{"θ", "th"},
	{"ι", "i"},
	{"κ", "k"},
	{"λ", "l"},
	{"μ", "m"},
	{"ν", "n"},
	{"ξ", "x"},
	{"ο", "o"},
	{"π", "p"},
	{"ρ", "r"},
	{"ς", "s"},
	{"σ", "s"},
	{"τ", "t"},
	{"υ", "y"},
	{"φ", "f"},
	{"χ", "kh"},
	{"ψ", "ps"},
	{"ω", "o"},
	{"ϊ", "i"},
	{"ϋ", "y"},
	{"ό", "o"},
	{"ύ", "y"},
	{"ώ", "o"},
	{"ου", "ou"},
	{"ού", "ou"},

	// Decomposed Latin: a base letter followed by a combining mark.
	{"A\u0300", "A"},
	{"A\u0301", "A"},
	{"A\u0302", "I"},
	{"A\u0303", "A"},
	{"A\u0306", "A"},
	{"A\u0308", "A"},
	{"A\u030a", "O"},
	{"C\u0327", "S"},
	{"E\u0300", "E"},
	{"E\u0301", "E"},
	{"E\u0302", "E"},
	{"E\u0308", "E"},
	{"I\u0300", "I"},
	{"I\u0301", "I"},
	{"I\u0302", "I"},
	{"I\u0308", "Yi"},
	{"N\u0303", "N"},
	{"O\u0300", "O"},
	{"O\u0301", "O"},
	{"O\u0302", "O"},
	{"O\u0308", "O"},
	{"S\u0327", "Sh"},
	{"T\u0327", "Ts"},
	{"U\u0300", "U"},
	{"U\u0301", "U"},
	{"U\u0302", "U"},
	{"U\u0308", "U"},
	{"a\u0300", "a"},
	{"a\u0301", "a"},
	{"a\u0302", "i"},
	{"a\u0303", "a"},
	{"a\u0306", "a"},
	{"a\u0308", "a"},
	{"a\u030a", "o"},
	{"c\u0327", "s"},
	{"e\u0300", "e"},
	{"e\u0301", "e"},
	{"e\u0302", "e"},
	{"e\u0308", "e"},
	{"i\u0300", "i"},
	{"i\u0301", "i"},
	{"i\u0302", "i"},
	{"i\u0308", "yi"},
	{"n\u0303", "n"},
	{"o\u0300", "o"},
	{"o\u0301", "o"},
	{"o\u0302", "o"},
	{"o\u0308", "o"},
	{"s\u0327", "sh"},
	{"t\u0327", "ts"},
	{"u\u0300", "u"},
	{"u\u0301", "u"},
	{"u\u0302", "u"},
	{"u\u0308", "u"},
}
