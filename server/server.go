// Package server evaluates expressions over HTTP.
//
// Every request is independent; nothing is stored between requests.
package server

import (
	"encoding/json"

	"github.com/valyala/fasthttp"

	"github.com/treeviz/arith"
	"github.com/treeviz/arith/render"
)

const (
	// DefaultAddr is the address Serve listens on when none is given.
	DefaultAddr = ":8080"
	// MaxBodySize is the largest request body New accepts.
	MaxBodySize = 64 * 1024
)

// Result of evaluating an expression.
type Result struct {
	Expression string            `json:"expression"`
	Value      any               `json:"value"`
	Tree       *render.Hierarchy `json:"tree"`
}

type errorResult struct {
	Error string `json:"error"`
}

// Handler serves:
//
//	GET|POST /eval?expr=<expression>  evaluate; POST may send the expression as the body
//	GET      /grammar                 the grammar as EBNF
func Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		switch string(ctx.Path()) {
		case "/eval":
			if !ctx.IsGet() && !ctx.IsPost() {
				ctx.Error("method not allowed", fasthttp.StatusMethodNotAllowed)
				return
			}
			eval(ctx)
		case "/grammar":
			ctx.SetContentType("text/plain; charset=utf-8")
			ctx.SetBodyString(arith.Grammar)
		default:
			ctx.Error("not found", fasthttp.StatusNotFound)
		}
	}
}

func eval(ctx *fasthttp.RequestCtx) {
	input := string(ctx.QueryArgs().Peek("expr"))
	if input == "" && ctx.IsPost() {
		input = string(ctx.PostBody())
	}
	if input == "" {
		writeJSON(ctx, fasthttp.StatusBadRequest, errorResult{Error: "missing expression"})
		return
	}
	expr, err := arith.ParseString(input)
	if err != nil {
		ctx.Logger().Printf("eval %q: %s", input, err)
		writeJSON(ctx, fasthttp.StatusBadRequest, errorResult{Error: err.Error()})
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, Result{
		Expression: expr.String(),
		Value:      render.Value(expr.Evaluate()),
		Tree:       render.NewHierarchy(expr),
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	if err := json.NewEncoder(ctx).Encode(v); err != nil {
		ctx.Error(err.Error(), fasthttp.StatusInternalServerError)
	}
}

// New creates a server for Handler with request bodies limited to MaxBodySize.
func New() *fasthttp.Server {
	return &fasthttp.Server{
		Handler:            Handler(),
		Name:               "arith",
		MaxRequestBodySize: MaxBodySize,
	}
}

// Serve listens on addr and serves New until the listener fails.
func Serve(addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	return New().ListenAndServe(addr)
}
