// Package screen is the navigation core: a registry of mutually exclusive
// screens, the lifecycle hooks each screen exposes, and the Navigator that
// keeps the active screen in step with a session-history stack.
//
// Lifecycle:
//   - A Screen is bound to its container element once, in New, and stays
//     hidden until a Navigator displays it.
//   - show marks the screen visible, stores the payload and calls OnShow.
//   - hide marks it hidden, calls OnHide and only then clears the payload.
//   - Refresh calls OnHide then OnShow with the stored payload so per-show
//     resources (tickers, subscriptions) are torn down before re-rendering.
//
// Navigation:
//   - Navigator.Display is the only way to change Registry.Current. It looks up
//     the target, records history according to the NavMode, hides whatever is
//     current and shows the target.
//   - Navigator.Restore replays an entry handed back by the history host with
//     NavNone, so restoring never writes history. Entries without a record
//     are ignored.
//
// Everything runs on the caller's goroutine; hooks may re-enter Display and
// the nested call completes before the outer one continues.
package screen
