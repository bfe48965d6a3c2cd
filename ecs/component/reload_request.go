package component

// ReloadRequest asks the persistence system to rebuild the world from the
// current prefabs. Create a short-lived entity carrying it.
type ReloadRequest struct{}

var ReloadRequestComponent = NewComponent[ReloadRequest]()
