package input

// BindDefaults installs the demo's event table: DefaultBindings drive ks,
// escape releases the cursor, mouse1 captures it and f3 runs toggleDebug.
// Cursor mode errors are passed to report.
func BindDefaults(d *Dispatcher, ks KeyState, m *MouseCapture, toggleDebug Handler, report func(error)) {
	BindControls(d, ks, DefaultBindings())
	d.Accept(EventEscape, func() { report(m.Release()) })
	d.Accept(EventMouse1, func() { report(m.Capture()) })
	d.Accept(EventToggleDebug, toggleDebug)
}
