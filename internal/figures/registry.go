package figures

import "sort"

// Registry maps canonical figure names and their aliases to implementations.
// It is constructed once and passed to the orchestrator, so there is no
// hidden load-order dependency on a package-global table.
type Registry struct {
	funcs     map[string]Func
	canonical map[string]bool
}

// NewRegistry creates a Registry pre-registered with all builtin figures.
func NewRegistry() *Registry {
	r := &Registry{
		funcs:     make(map[string]Func),
		canonical: make(map[string]bool),
	}

	r.Register("allemande_right", AllemandeRight, "allemande_r")
	r.Register("allemande_left", AllemandeLeft, "allemande_l")
	r.Register("circle_left", CircleLeft, "circle_l")
	r.Register("circle_right", CircleRight, "circle_r")
	r.Register("star_left", StarLeft, "star_l", "left_hand_star")
	r.Register("star_right", StarRight, "star_r", "right_hand_star")
	r.Register("do_si_do", DoSiDo, "dosido", "do_si_do_once")
	r.Register("pull_by_right", PullByRight, "pull_by_r")
	r.Register("pull_by_left", PullByLeft, "pull_by_l")
	r.Register("box_the_gnat", BoxTheGnat)
	r.Register("balance", Balance, "balance_right", "balance_left")
	r.Register("petronella", Petronella)
	r.Register("robins_chain", RobinsChain, "ladies_chain", "chain")
	r.Register("swing", Swing, "partner_swing", "neighbor_swing")

	return r
}

// Register binds a figure under its canonical name and any aliases.
// A later registration for the same name wins.
func (r *Registry) Register(name string, fn Func, aliases ...string) {
	r.funcs[name] = fn
	r.canonical[name] = true
	for _, alias := range aliases {
		r.funcs[alias] = fn
	}
}

// Lookup finds a figure by canonical name or alias.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.funcs[name]
	return fn, ok
}

// Names returns the sorted canonical figure names (aliases excluded).
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.canonical))
	for name := range r.canonical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
