package arith

// Grammar accepted by Parse, in the EBNF dialect of golang.org/x/exp/ebnf.
//
// Productions are upper case. Lexical productions are lower case; the words and symbols in
// quotes are the lexemes of the corresponding token kinds.
const Grammar = `Expression = Term { ( "+" | "-" ) Term } .
Term = Factor { ( "*" | "/" ) Factor } .
Factor = [ "+" | "-" ] Function .
Function = ( "sin" | "cos" | "tan" ) "(" Expression ")" | Primary .
Primary = number | "pi" | "(" Expression ")" .
number = digits [ "." [ digits ] ] [ exponent ] | "." digits [ exponent ] .
exponent = ( "e" | "E" ) [ "+" | "-" ] digits .
digits = digit { digit } .
digit = "0" … "9" .
`
