package cmd

import (
	"github.com/etnz/bids"
	"github.com/etnz/bids/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Install it with `COMP_INSTALL=1 bidsort`.
func Completion() *complete.Command {
	algos := make(predict.Set, 0, len(bids.Algorithms))
	for _, a := range bids.Algorithms {
		algos = append(algos, a.String())
	}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"csv-path": predict.Files("*.csv"),
			"v":        predict.Nothing,
			"plain":    predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"load": {},
			"display": {Flags: map[string]complete.Predictor{
				"n":     predict.Something,
				"lines": predict.Nothing,
			}},
			"sort": {Flags: map[string]complete.Predictor{
				"algo":  algos,
				"n":     predict.Something,
				"o":     predict.Files("*.jsonl"),
				"from":  predict.Files("*.jsonl"),
				"check": predict.Nothing,
			}},
			"bench": {},
			"query": {Flags: map[string]complete.Predictor{
				"q":    predict.Something,
				"algo": algos,
				"from": predict.Files("*.jsonl"),
			}},
			"menu":  {},
			"topic": {Args: predict.Set(topics)},
		},
	}
}
