// Package chain reads a railway pipeline top to bottom instead of as nested
// solo calls:
//
//	events := chain.Then(chain.Then(chain.Start(ctx, validated), lookup), derive).Result()
//
// Start and FromValue open a chain, Then and ThenTry add steps that are
// skipped after the first failure, Map transforms the value, Ensure observes
// it and Finally folds the chain into a plain value.
package chain
