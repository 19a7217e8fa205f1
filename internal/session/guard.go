package session

// Route classifies a view for guarding purposes.
type Route int

const (
	RoutePublic Route = iota
	RouteProtected
	RouteLoginOnly
)

// Decision is the guard's verdict for the current session state.
type Decision int

const (
	// DecisionWait defers any redirect while the session is still loading.
	DecisionWait Decision = iota
	DecisionAllow
	// DecisionRedirectLogin sends an unauthenticated user off a protected view.
	DecisionRedirectLogin
	// DecisionRedirectHome sends an authenticated user off a login-only view.
	DecisionRedirectHome
)

// Evaluate computes the redirect decision for one snapshot. While loading,
// the only valid answer is to wait and render nothing decisive.
func Evaluate(snap Snapshot, route Route) Decision {
	if snap.Loading {
		return DecisionWait
	}
	switch route {
	case RouteProtected:
		if !snap.Authenticated {
			return DecisionRedirectLogin
		}
	case RouteLoginOnly:
		if snap.Authenticated {
			return DecisionRedirectHome
		}
	}
	return DecisionAllow
}

// Guard re-evaluates the redirect decision every time the session changes,
// not just once: authentication can flip at any point (login, logout, 401
// eviction) and the decision must track it.
func Guard(store *Store, route Route, onDecision func(Decision)) (cancel func()) {
	return store.Watch(func(snap Snapshot) {
		onDecision(Evaluate(snap, route))
	})
}
