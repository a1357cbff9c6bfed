package regex

// Common canned regex patterns for the token kinds almost every grammar
// declares, so a caller doesn't have to hand-write bracket expressions for
// things like identifiers and numeric literals. Grounded on
// _examples/original_source/parsegen_regex.cpp's make_common_regex helpers.
const (
	// CommonIdentifier matches a letter or underscore followed by zero or
	// more letters, digits, or underscores.
	CommonIdentifier = `[a-zA-Z_][a-zA-Z0-9_]*`

	// CommonWhitespace matches one or more spaces, tabs, or newlines. This
	// one is written as an interpreted Go string literal, not raw, so the
	// Go compiler turns \t \n \r into actual tab/newline/CR bytes before
	// the bootstrap regex parser ever sees them: this module's escape
	// syntax treats a backslash-escaped letter as that literal letter, not
	// as a control-character shorthand, so "\t" written raw here would
	// match the letter "t", not a tab.
	CommonWhitespace = "[ \t\n\r]+"

	// CommonUnsignedInteger matches one or more decimal digits.
	CommonUnsignedInteger = `[0-9]+`

	// CommonSignedInteger matches CommonUnsignedInteger with an optional
	// leading sign. The sign is escaped inside the class because the
	// bootstrap lexer tokenizes "+" as a qualifier everywhere, brackets
	// included; a backslash always forces CHAR regardless of context.
	CommonSignedInteger = `[\+\-]?[0-9]+`

	// CommonUnsignedFloat matches a decimal number with a mandatory
	// fractional part and an optional exponent.
	CommonUnsignedFloat = `[0-9]+\.[0-9]+([eE][\+\-]?[0-9]+)?`

	// CommonSignedFloat matches CommonUnsignedFloat with an optional
	// leading sign.
	CommonSignedFloat = `[\+\-]?[0-9]+\.[0-9]+([eE][\+\-]?[0-9]+)?`

	// CommonLineComment matches a "//"-style comment running to end of
	// line (the newline itself is not consumed). Interpreted, not raw, for
	// the same reason as CommonWhitespace: the excluded character must be
	// an actual newline byte, not the two characters "\n".
	CommonLineComment = "//[^\n]*"

	// CommonBlockComment matches a "/* ... */"-style comment. The body
	// repeats either "any char except *" or a run of one or more literal
	// "*"s that isn't itself followed by "/", and the comment closes with
	// one or more "*"s and a "/".
	CommonBlockComment = `/\*([^\*]|\*+[^\*/])*\*+/`

	// CommonQuotedString matches a double-quoted string with backslash
	// escapes, but does not itself interpret the escapes.
	CommonQuotedString = `"([^"\\]|\\.)*"`
)
