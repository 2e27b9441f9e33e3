// Package effects provides the physiological effect curves composed into a
// one-day glucose trajectory.
//
// Each effect is a pure function of minute-of-day plus its own parameters,
// returning a signed contribution in mg/dL:
//
//   - [Dawn]: pre-dawn hormonal glucose rise (Gaussian bump)
//   - [WeeklyDrug]: once-weekly slow-decay agent (exponential)
//   - [Meal]: carbohydrate absorption bump, blunted and delayed by the drug
//   - [Exercise]: constant drop over the activity window (step function)
//   - [Sleep]: multiplicative insulin-sensitivity factor
//
// Insulin action is a free function, [Action], keyed on the dose kind.
//
// The weekly drug feeds into meal absorption (one-way): callers evaluate
// [WeeklyDrug.Level] first and pass the result to [Meal.Contribution].
package effects
