// Package predictor estimates monthly grocery spending from a purchase
// history using a language model.
//
// The Predictor interface is the opaque contract: purchase history in,
// predicted spending and savings advice out. GeminiPredictor implements it
// with google.golang.org/genai and a JSON response schema.
//
// Service wraps a Predictor with the caller-side rules: histories shorter
// than MinHistory are rejected locally without calling the model, and any
// model failure is reported as ErrPredictionUnavailable with a generic
// message. There is no retry.
package predictor
