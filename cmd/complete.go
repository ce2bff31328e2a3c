package cmd

import (
	"maps"

	"github.com/etnz/tourney"
	"github.com/etnz/tourney/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var filterPredictors = map[string]complete.Predictor{
	"from":     predict.Something,
	"to":       predict.Something,
	"room":     predict.Something,
	"format":   predict.Set{"MTT", "SnG", "PKO"},
	"currency": predict.Something,
}

func withFilters(flags map[string]complete.Predictor) map[string]complete.Predictor {
	maps.Copy(flags, filterPredictors)
	return flags
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"summary": {Flags: withFilters(map[string]complete.Predictor{
				"show-by": predict.Set(tourney.TimeModes),
				"export":  predict.Files("*"),
				"json":    predict.Nothing,
				"q":       predict.Something,
			})},
			"details": {Flags: withFilters(map[string]complete.Predictor{
				"limit": predict.Something,
			})},
			"graph": {Flags: withFilters(map[string]complete.Predictor{
				"metric":         predict.Set{tourney.ProfitMetric.String(), tourney.BankrollMetric.String()},
				"start-bankroll": predict.Something,
				"output":         predict.Files("*.png"),
			})},
			"add": {Flags: map[string]complete.Predictor{
				"date":     predict.Something,
				"room":     predict.Something,
				"name":     predict.Something,
				"buy-in":   predict.Something,
				"rake":     predict.Something,
				"currency": predict.Something,
				"result":   predict.Something,
				"place":    predict.Something,
				"players":  predict.Something,
				"format":   predict.Set{"MTT", "SnG", "PKO"},
				"notes":    predict.Something,
			}},
			"topic": {Args: predict.Set(topics)},
			"help":  {},
		},
		Flags: map[string]complete.Predictor{
			"file":  predict.Files("*.csv"),
			"v":     predict.Nothing,
			"plain": predict.Nothing,
		},
	}
}

// Complete answers a shell completion request and exits, or returns if the
// program was not invoked for completion.
func Complete(name string) { Completion().Complete(name) }
