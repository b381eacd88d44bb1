package main

// A ring holds the entries that have an image, in source order, and
// links the last one back to the first. Placeholder days are not part of
// the ring, so every page links to the nearest page in each direction.
type ring struct {
	slots entries
}

func newRing(es entries) ring {
	return ring{slots: es.withImages()}
}

func (r ring) Len() int { return len(r.slots) }

func (r ring) at(i int) *entry { return r.slots[i] }

func (r ring) prev(i int) *entry {
	n := len(r.slots)
	return r.slots[(i-1+n)%n]
}

func (r ring) next(i int) *entry {
	return r.slots[(i+1)%len(r.slots)]
}

// pagePlan is everything needed to render one detail page.
type pagePlan struct {
	Date          string
	Description   string
	ImagePath     string
	ThumbnailPath string
	PageName      string
	PrevPage      string
	NextPage      string
}

func (r ring) plan(i int) pagePlan {
	e := r.at(i)
	return pagePlan{
		Date:          e.Date,
		Description:   e.Description,
		ImagePath:     e.ImagePath(),
		ThumbnailPath: e.ThumbnailPath(),
		PageName:      e.PageName(),
		PrevPage:      r.prev(i).PageName(),
		NextPage:      r.next(i).PageName(),
	}
}

// planPages returns the plans for the pages that have to be written, in
// ring order.
func planPages(r ring, existing pageSet, force bool) []pagePlan {
	plans := make([]pagePlan, 0, r.Len())
	for i := range r.Len() {
		p := r.plan(i)
		if existing.needsWrite(p.PageName, force) {
			plans = append(plans, p)
		}
	}
	return plans
}
