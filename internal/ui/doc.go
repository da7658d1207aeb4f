// Package ui contains the Bubble Tea program behind the tokencalc input.
// Model focuses on message orchestration; dedicated helpers own text editing,
// suggestion navigation, pointer input and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, window sizes, fetch results).
//   - Every text change goes through commitText: the input store takes the new
//     text, the result is recalculated and the suggestion list is refiltered
//     against the cached records.
//   - Structural deletions and suggestion splices place the caret in the same
//     Update that rewrites the text: at the start of the removed span, or at
//     the end of the text after a splice.
//
// State ownership:
//   - Text, suggestions and the cached result live in store.InputStore.
//   - The caret/selection and the highlighted suggestion live in
//     internal/ui/state.
//   - The suggestion list is fetched once through the command bus; the
//     dispatcher folds the outcome into the source adapter and the store.
package ui
