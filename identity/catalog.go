package identity

// Endpoint is a single region-tagged URL for one service type. An empty
// Region means the endpoint applies to all regions.
type Endpoint struct {
	ServiceType string
	Region      string
	PublicURL   string
	InternalURL string
}

type catalogService struct {
	serviceType string
	endpoints   []Endpoint
}

// ServiceCatalog maps service types onto their Endpoints. It is built once
// from the scoped-auth response and read-only afterwards, so it is safe for
// concurrent use.
type ServiceCatalog struct {
	services []catalogService
}

func newServiceCatalog(payload []servicePayload) ServiceCatalog {
	var catalog ServiceCatalog
	index := make(map[string]int)

	for _, svc := range payload {
		pos, ok := index[svc.Type]
		if !ok {
			pos = len(catalog.services)
			index[svc.Type] = pos
			catalog.services = append(catalog.services, catalogService{serviceType: svc.Type})
		}
		for _, ep := range svc.Endpoints {
			catalog.services[pos].endpoints = append(catalog.services[pos].endpoints, Endpoint{
				ServiceType: svc.Type,
				Region:      ep.Region,
				PublicURL:   ep.PublicURL,
				InternalURL: ep.InternalURL,
			})
		}
	}
	return catalog
}

// Resolve returns the best endpoint for serviceType: an exact region match,
// the first endpoint when no region is requested, or the regionless fallback.
// A miss returns the zero Endpoint and false, never an error; the
// authoritative region failure is raised during the handshake.
func (c ServiceCatalog) Resolve(serviceType, region string) (Endpoint, bool) {
	for _, svc := range c.services {
		if svc.serviceType != serviceType {
			continue
		}
		if len(svc.endpoints) == 0 {
			return Endpoint{}, false
		}
		if region == "" {
			return svc.endpoints[0], true
		}

		var fallback *Endpoint
		for i, ep := range svc.endpoints {
			if ep.Region == region {
				return ep, true
			}
			if ep.Region == "" && fallback == nil {
				fallback = &svc.endpoints[i]
			}
		}
		if fallback != nil {
			return *fallback, true
		}
		return Endpoint{}, false
	}
	return Endpoint{}, false
}

// URL returns the resolved endpoint's public URL, or "" if unresolved.
func (c ServiceCatalog) URL(serviceType, region string) string {
	ep, ok := c.Resolve(serviceType, region)
	if !ok {
		return ""
	}
	return ep.PublicURL
}

// ServiceTypes lists the catalog's service types in catalog order.
func (c ServiceCatalog) ServiceTypes() []string {
	types := make([]string, 0, len(c.services))
	for _, svc := range c.services {
		types = append(types, svc.serviceType)
	}
	return types
}

// Endpoints returns the endpoints recorded for serviceType, in catalog order.
func (c ServiceCatalog) Endpoints(serviceType string) []Endpoint {
	for _, svc := range c.services {
		if svc.serviceType == serviceType {
			out := make([]Endpoint, len(svc.endpoints))
			copy(out, svc.endpoints)
			return out
		}
	}
	return nil
}

// checkRegion verifies that every service whose endpoints are region-tagged
// can serve the requested region, either exactly or through a regionless
// fallback. The first unsatisfiable service type aborts the check.
func (c ServiceCatalog) checkRegion(region string) error {
	for _, svc := range c.services {
		var tagged, matched, fallback bool
		for _, ep := range svc.endpoints {
			if ep.Region == "" {
				fallback = true
				continue
			}
			tagged = true
			if ep.Region == region {
				matched = true
			}
		}
		if tagged && !matched && !fallback {
			return errEndpointNotFound(svc.serviceType)
		}
	}
	return nil
}
