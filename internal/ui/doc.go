// Package ui contains the Bubble Tea program that browses a path tree.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function (key presses, mouse events, resizes, source batches, action
//     results).
//   - Navigation helpers (navigation.go) move the cursor and translate the
//     cursor's visible line index into a tree coordinate with tree.Resolve
//     before folding or unfolding that node in the CollapseState.
//   - Search helpers (input.go) keep query editing isolated from the event
//     loop. Search never hides lines; it only moves the cursor, so visible
//     indices always agree with the rendered tree.
//
// State ownership:
//   - Cursor, scroll offset and the search query live in
//     internal/ui/state.Viewport.
//   - The tree and its CollapseState are owned by the Model; the dispatcher
//     appends incoming paths to the same tree.
//   - Side effects such as clipboard writes run asynchronously through the
//     internal/ui/command bus.
//
// Input:
//   - A source.Stream delivers batches of lines. Update waits for those
//     events and hands them to applySourceEvent, which ingests the batch,
//     applies the initial collapse depth to new nodes and keeps the cursor on
//     the same node.
package ui
