// Package spending serves monthly spending predictions.
//
// POST /spending/prediction sends the user's purchase log to the
// configured predictor. Fewer than three purchases, a missing model or a
// model failure all answer 422 with a message fit for the user.
package spending
