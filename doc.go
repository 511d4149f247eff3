// Package arith parses a stream of arithmetic tokens into an expression tree and evaluates
// it.
//
// The grammar, from lowest to highest precedence, is:
//
//	expression := term (('+' | '-') term)*
//	term       := factor (('*' | '/') factor)*
//	factor     := ('+' | '-') function | function
//	function   := ('sin' | 'cos' | 'tan') '(' expression ')' | primary
//	primary    := number | 'pi' | '(' expression ')'
//
// Binary operators are left-associative. A unary sign applies to a single function or
// primary, so "-2*3" is "(-2)*3" and "-sin(0)" is "-(sin(0))". Trigonometric functions
// take their argument in degrees.
//
// Every node's Evaluate passes its result through Clean, which snaps values within Epsilon
// of zero or of an integer to that value:
//
//	expr, err := arith.ParseString("sin(180) + 2 * 3")
//	if err != nil {
//		return err
//	}
//	fmt.Println(expr.Evaluate()) // 6
//
// Tokens may come from any tokenizer; see the lexer package.
package arith
