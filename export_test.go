package chartopts

// ResetSharedConfig drops the shared Config so the next caching call
// builds a new one.
func ResetSharedConfig() { shared = &sharedConfig{} }
