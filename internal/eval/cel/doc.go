// Package cel evaluates the CEL expressions that decide whether a decoded
// RDS field is published.
//
// Example usage:
//
//	evaluator, err := cel.NewEvaluator()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ok, err := evaluator.Match(ctx, `field in ["ta", "tp"]`, map[string]interface{}{
//	    "field": "ta",
//	    "mode":  "essential",
//	})
//	// ok == true
//
// Compiled programs are cached per expression, so an Evaluator is cheap to
// call repeatedly and safe for concurrent use.
package cel
