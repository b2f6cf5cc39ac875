package openai

import "strings"

// price is USD per 1K tokens.
type price struct {
	prompt     float64
	completion float64
}

// prices is keyed by model family. Dated snapshots such as
// "gpt-3.5-turbo-0125" match the longest family prefix.
var prices = map[string]price{
	"gpt-3.5-turbo": {prompt: 0.0005, completion: 0.0015},
	"gpt-4":         {prompt: 0.03, completion: 0.06},
	"gpt-4-turbo":   {prompt: 0.01, completion: 0.03},
	"gpt-4o":        {prompt: 0.0025, completion: 0.01},
	"gpt-4o-mini":   {prompt: 0.00015, completion: 0.0006},
	"gpt-4.1":       {prompt: 0.002, completion: 0.008},
	"gpt-4.1-mini":  {prompt: 0.0004, completion: 0.0016},
}

// Cost returns the estimated USD cost of an invocation.
// Unknown models cost 0.
func Cost(model string, promptTokens, completionTokens int) float64 {
	p, ok := lookupPrice(model)
	if !ok {
		return 0
	}
	return float64(promptTokens)/1000*p.prompt + float64(completionTokens)/1000*p.completion
}

func lookupPrice(model string) (price, bool) {
	best := ""
	for family := range prices {
		if (model == family || strings.HasPrefix(model, family+"-")) && len(family) > len(best) {
			best = family
		}
	}
	if best == "" {
		return price{}, false
	}
	return prices[best], true
}
