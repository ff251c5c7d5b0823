package geometry

// NearestSite returns the closest site sharing p's other axis and
// lying in direction dir from p. When strict is true, a site sitting
// exactly at p's own coordinate on the scanned axis does not count —
// only sites strictly past p are considered. When strict is false,
// that boundary site counts too (distance zero), which is what lets a
// caller ask "is p itself, or anything beyond it, occupied". Returns
// ErrNoSiteInDirection if no such site exists.
func (g *Geometry) NearestSite(p Point, dir Direction, strict bool) (Site, error) {
	var best Site
	found := false

	for _, s := range g.sites {
		switch dir {
		case Left:
			if s.Pos.Y != p.Y {
				continue
			}
			if strict && s.Pos.X >= p.X {
				continue
			}
			if !strict && s.Pos.X > p.X {
				continue
			}
			if !found || s.Pos.X > best.Pos.X {
				best, found = s, true
			}
		case Right:
			if s.Pos.Y != p.Y {
				continue
			}
			if strict && s.Pos.X <= p.X {
				continue
			}
			if !strict && s.Pos.X < p.X {
				continue
			}
			if !found || s.Pos.X < best.Pos.X {
				best, found = s, true
			}
		case Up:
			if s.Pos.X != p.X {
				continue
			}
			if strict && s.Pos.Y >= p.Y {
				continue
			}
			if !strict && s.Pos.Y > p.Y {
				continue
			}
			if !found || s.Pos.Y > best.Pos.Y {
				best, found = s, true
			}
		case Down:
			if s.Pos.X != p.X {
				continue
			}
			if strict && s.Pos.Y <= p.Y {
				continue
			}
			if !strict && s.Pos.Y < p.Y {
				continue
			}
			if !found || s.Pos.Y < best.Pos.Y {
				best, found = s, true
			}
		}
	}
	if !found {
		return Site{}, ErrNoSiteInDirection
	}
	return best, nil
}

// NearestSiteLeft is NearestSite(p, Left, strict).
func (g *Geometry) NearestSiteLeft(p Point, strict bool) (Site, error) {
	return g.NearestSite(p, Left, strict)
}

// NearestSiteRight is NearestSite(p, Right, strict).
func (g *Geometry) NearestSiteRight(p Point, strict bool) (Site, error) {
	return g.NearestSite(p, Right, strict)
}

// NearestSiteUp is NearestSite(p, Up, strict).
func (g *Geometry) NearestSiteUp(p Point, strict bool) (Site, error) {
	return g.NearestSite(p, Up, strict)
}

// NearestSiteDown is NearestSite(p, Down, strict).
func (g *Geometry) NearestSiteDown(p Point, strict bool) (Site, error) {
	return g.NearestSite(p, Down, strict)
}
