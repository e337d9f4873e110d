package replay

import (
	"fmt"
	"io"
	"strings"

	"multiselect/internal/domain"
	"multiselect/internal/eventbus"
	"multiselect/internal/ui/coordinator"
	"multiselect/internal/ui/input"
	"multiselect/internal/ui/services/refs"
)

// Options tunes a replay run
type Options struct {
	// Events prints every bus event under the step that caused it
	Events bool
	Debug  bool
}

// runner plays the host: it owns the dropdown open flag and re-registers
// element refs after each step, as a render would.
type runner struct {
	script  *Script
	engine  *coordinator.Coordinator[string]
	w       io.Writer
	open    bool
	focused string // element the engine last focused
	events  []string
}

// Run replays script against a fresh engine, writing one line per step, and
// returns the final snapshot.
func Run(script *Script, w io.Writer, opts Options) (coordinator.Snapshot[string], error) {
	kind, err := domain.ParseTriggerKind(script.Trigger)
	if err != nil {
		return coordinator.Snapshot[string]{}, err
	}

	r := &runner{script: script, w: w, focused: "-"}
	bus := eventbus.New()
	if opts.Events {
		eventbus.SubscribeAll(bus, func(e eventbus.DomainEvent) {
			r.events = append(r.events, describeEvent(e))
		})
	}

	engineOpts := []coordinator.Option[string]{
		coordinator.WithBus[string](bus),
		coordinator.WithInitialItems(script.Initial),
		coordinator.WithTriggerKind[string](kind),
		coordinator.WithDebug[string](opts.Debug),
	}
	if script.AllowDuplicates != nil {
		engineOpts = append(engineOpts, coordinator.WithAllowDuplicates[string](*script.AllowDuplicates))
	}
	r.engine = coordinator.New(engineOpts...)
	r.mount()

	if _, err := fmt.Fprintf(w, "%3s %-24s items=[%s] focus=%s\n", "", "start",
		strings.Join(script.Initial, " "), r.engine.FocusTarget()); err != nil {
		return coordinator.Snapshot[string]{}, err
	}
	for i, st := range script.Steps {
		desc, note, err := r.step(st)
		if err != nil {
			return coordinator.Snapshot[string]{}, fmt.Errorf("step %d: %w", i+1, err)
		}
		r.mount()
		if err := r.report(i+1, desc, note); err != nil {
			return coordinator.Snapshot[string]{}, err
		}
	}
	return r.engine.GetSnapshot(), nil
}

func (r *runner) step(st Step) (desc, note string, err error) {
	switch {
	case st.Key != "":
		role, err := domain.ParseRole(st.Origin)
		if err != nil {
			return "", "", err
		}
		ctx := coordinator.KeyContext{
			Origin:           role,
			PreventKeyAction: r.open,
			CaretAtStart:     true,
		}
		if st.Prevent != nil {
			ctx.PreventKeyAction = *st.Prevent
		}
		if st.CaretAtStart != nil {
			ctx.CaretAtStart = *st.CaretAtStart
		}
		desc = fmt.Sprintf("key %s@%s", st.Key, role)
		if r.engine.HandleKeyDown(input.KeyMsg(st.Key), ctx) {
			return desc, "consumed", nil
		}
		return desc, "passed", nil

	case st.Click != nil:
		desc = fmt.Sprintf("click %d", *st.Click)
		if err := r.engine.HandleItemClick(*st.Click); err != nil {
			return desc, "error: " + err.Error(), nil
		}

	case st.Add != nil:
		desc = "add " + *st.Add
		if !r.engine.AddSelectedItem(*st.Add) {
			return desc, "duplicate", nil
		}

	case st.Remove != nil:
		desc = "remove " + *st.Remove
		if !r.engine.RemoveSelectedItem(*st.Remove) {
			return desc, "not selected", nil
		}

	case st.RemoveAt != nil:
		desc = fmt.Sprintf("remove_at %d", *st.RemoveAt)
		if err := r.engine.RemoveSelectedItemAt(*st.RemoveAt); err != nil {
			return desc, "error: " + err.Error(), nil
		}

	case st.Reset != nil:
		desc = "reset"
		r.engine.Reset(st.Reset)

	case st.Open:
		desc = "open"
		r.open = true
		r.engine.HandleTriggerClick()

	case st.Close:
		desc = "close"
		r.open = false
	}
	return desc, "", nil
}

// mount registers one ref per element the host would render
func (r *runner) mount() {
	if !r.script.NoTrigger {
		r.engine.RegisterElementRef(domain.TriggerRole(), r.ref(domain.TriggerRole()))
	}
	for i := 0; i < r.engine.Selection.Len(); i++ {
		role := domain.ItemRole(i)
		r.engine.RegisterElementRef(role, r.ref(role))
	}
}

func (r *runner) ref(role domain.Role) refs.Ref {
	return refs.RefFunc(func() {
		r.focused = role.String()
	})
}

func (r *runner) report(n int, desc, note string) error {
	snap := r.engine.GetSnapshot()
	line := fmt.Sprintf("%3d %-24s items=[%s] focus=%s dom=%s", n, desc,
		strings.Join(snap.Items, " "), snap.Focus, r.focused)
	if note != "" {
		line += " " + note
	}
	if _, err := fmt.Fprintln(r.w, line); err != nil {
		return err
	}
	for _, e := range r.events {
		if _, err := fmt.Fprintf(r.w, "      %s\n", e); err != nil {
			return err
		}
	}
	r.events = r.events[:0]
	return nil
}

func describeEvent(e eventbus.DomainEvent) string {
	switch ev := e.(type) {
	case eventbus.KeyResolvedEvent:
		return fmt.Sprintf("%s %s -> %s", ev.Type(), ev.Key, ev.Action)
	case eventbus.FocusMovedEvent:
		return fmt.Sprintf("%s %s -> %s", ev.Type(), ev.From, ev.To)
	case eventbus.FocusRequestedEvent:
		return fmt.Sprintf("%s %s delivered=%t", ev.Type(), ev.Target, ev.Delivered)
	default:
		return string(e.Type())
	}
}
