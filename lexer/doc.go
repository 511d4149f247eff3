// Package lexer defines the token stream consumed by the arithmetic parser.
//
// The primary types are Token, Kind and PeekingLexer. Tokenize adapts a Participle lexer to
// turn raw text into a token stream for callers that do not bring their own tokenizer.
package lexer
