package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/quantfold/folio"
	"github.com/quantfold/folio/date"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to get figures about the investments in his portfolio:
			earnings, percentage yield, annualized return.

			Devise a plan of questions to ask to each expert and come up with the best response to the user's request.

			The user will assume that you know his holdings, check the portfolio first to understand what they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewAnalyst creates the expert in charge of the user's holdings. All its
// tools compute over the given stocks and bonds, valued on the given day.
func NewAnalyst(stocks []folio.Investment, bonds []folio.Bond, on date.Date) *Expert {
	lib := []Function{holdingsFunc(stocks, bonds, on), lookupFunc(stocks, bonds, on)}

	return &Expert{
		Name: "Analyst",
		Description: `This is the Analyst. He knows every holding in the user's portfolio
		and can compute its earnings, percentage yield and annualized return.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an analyst in charge of the user's portfolio holdings.
				You know how to use the Tools to extract relevant figures about each holding.
				You are part of a team of experts, yours is everything about the user's holdings.
				They might ask you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the user's portfolio:
				  - list of holdings with their figures
				  - a single holding by symbol
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function.
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func holdingsFunc(stocks []folio.Investment, bonds []folio.Bond, on date.Date) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Holdings",
			Description: `Holdings lists every stock and bond in the portfolio with its
			purchase ID, symbol, quantity, earnings, percentage yield and annualized return.`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all holdings and their figures.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var b strings.Builder
			b.WriteString("| ID | Symbol | Qty | Earnings | Yield% | Yearly% |\n")
			b.WriteString("|---|---|---|---|---|---|\n")
			for i := range stocks {
				s := &stocks[i]
				fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s |\n",
					s.PurchaseID, s.Symbol, s.Quantity,
					s.Earnings(), s.PercentYield().Fixed(), s.YearlyReturnOn(on).Fixed())
			}
			for i := range bonds {
				bd := &bonds[i]
				fmt.Fprintf(&b, "| %s | %s | %d | %s | %s | %s |\n",
					bd.PurchaseID, bd.Symbol, bd.Quantity,
					bd.Earnings(), bd.PercentYield().Fixed(), bd.YearlyReturnOn(on).Fixed())
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: "Holdings",
				Response: map[string]any{
					"output": b.String(),
				},
			}
		},
	}
}

func lookupFunc(stocks []folio.Investment, bonds []folio.Bond, on date.Date) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Lookup",
			Description: `Lookup returns the figures for a single holding identified
			by its ticker symbol.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"symbol": {
						Type:        genai.TypeString,
						Description: "The ticker symbol of the holding, e.g. GOOGL.",
					},
				},
				Required: []string{"symbol"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "Earnings, percentage yield and annualized return for the holding.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			fresp := &genai.FunctionResponse{
				ID:       id,
				Name:     "Lookup",
				Response: map[string]any{},
			}
			symbol, ok := args["symbol"].(string)
			if !ok {
				fresp.Response["error"] = fmt.Sprintf("argument 'symbol' is not a string but %T", args["symbol"])
				return fresp
			}
			symbol = strings.ToUpper(strings.TrimSpace(symbol))

			var h folio.Holding
			for i := range stocks {
				if stocks[i].Symbol == symbol {
					h = &stocks[i]
					break
				}
			}
			if h == nil {
				for i := range bonds {
					if bonds[i].Symbol == symbol {
						h = &bonds[i]
						break
					}
				}
			}
			if h == nil {
				fresp.Response["error"] = fmt.Sprintf("no holding with symbol %q", symbol)
				return fresp
			}
			fresp.Response["output"] = fmt.Sprintf("%s: earnings=%s yield=%s yearly=%s",
				symbol, h.Earnings(), h.PercentYield(), h.YearlyReturnOn(on))
			return fresp
		},
	}
}
