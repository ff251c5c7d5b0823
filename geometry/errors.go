package geometry

import "errors"

// ErrNoSiteInDirection is returned by the nearestSite* queries when no
// site exists strictly in the requested direction from a point.
var ErrNoSiteInDirection = errors.New("geometry: no site in that direction")

// ErrUnknownSite is returned when a site references a zone index
// beyond the declared zones.
var ErrUnknownSite = errors.New("geometry: site not declared in its zone")

// ErrNoInteractionZone is returned when a machine description declares
// no interaction-capable zone.
var ErrNoInteractionZone = errors.New("geometry: no interaction zone declared")
