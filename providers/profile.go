// Package providers carries the per-provider data that used to live in
// provider-specific subclasses: identity API paths, service-type naming and
// server-status normalization. A Profile is plain data behind a small
// capability interface; resource wrappers consume it, they never switch on
// provider names themselves.
package providers

import "strings"

// Kind is an abstract service category, independent of how a given provider
// names it in its service catalog.
type Kind string

const (
	Compute       Kind = "compute"
	ObjectStorage Kind = "object-storage"
	BlockStorage  Kind = "block-storage"
	DNS           Kind = "dns"
	IdentityKind  Kind = "identity"
)

// ServerStatus is the provider-independent server state.
type ServerStatus string

const (
	StatusProvisioning ServerStatus = "PROVISIONING"
	StatusRunning      ServerStatus = "RUNNING"
	StatusStopped      ServerStatus = "STOPPED"
	StatusReboot       ServerStatus = "REBOOT"
	StatusUpdating     ServerStatus = "UPDATING"
	StatusError        ServerStatus = "ERROR"
	StatusUnknown      ServerStatus = "UNKNOWN"
)

// Profile exposes the provider-specific mappings a client needs to talk to
// one cloud. Implementations are stateless values, safe for concurrent use.
type Profile interface {
	// Name identifies the provider ("openstack", "rackspace").
	Name() string

	// IdentityPath is the version prefix of the identity API ("v2.0").
	IdentityPath() string

	// ServiceType maps an abstract Kind onto the provider's catalog
	// service-type name. Returns "" for kinds the provider does not offer.
	ServiceType(kind Kind) string

	// NormalizeServerStatus maps a provider status string onto a
	// ServerStatus.
	NormalizeServerStatus(status string) ServerStatus
}

type openstack struct{}

// OpenStack returns the profile for a stock OpenStack cloud.
func OpenStack() Profile { return openstack{} }

func (openstack) Name() string         { return "openstack" }
func (openstack) IdentityPath() string { return "v2.0" }

func (openstack) ServiceType(kind Kind) string {
	switch kind {
	case Compute:
		return "compute"
	case ObjectStorage:
		return "object-store"
	case BlockStorage:
		return "volume"
	case DNS:
		return "dns"
	case IdentityKind:
		return "identity"
	}
	return ""
}

func (openstack) NormalizeServerStatus(status string) ServerStatus {
	return normalizeServerStatus(status)
}

type rackspace struct{}

// Rackspace returns the profile for the Rackspace public cloud. It differs
// from stock OpenStack only in catalog naming.
func Rackspace() Profile { return rackspace{} }

func (rackspace) Name() string         { return "rackspace" }
func (rackspace) IdentityPath() string { return "v2.0" }

func (rackspace) ServiceType(kind Kind) string {
	switch kind {
	case Compute:
		return "compute"
	case ObjectStorage:
		return "object-store"
	case BlockStorage:
		return "volume"
	case DNS:
		return "rax:dns"
	case IdentityKind:
		return "identity"
	}
	return ""
}

func (rackspace) NormalizeServerStatus(status string) ServerStatus {
	return normalizeServerStatus(status)
}

// ByName returns the profile registered for name, defaulting to OpenStack
// for unknown names.
func ByName(name string) Profile {
	if strings.EqualFold(name, "rackspace") {
		return Rackspace()
	}
	return OpenStack()
}

func normalizeServerStatus(status string) ServerStatus {
	switch strings.ToUpper(status) {
	case "BUILD", "REBUILD":
		return StatusProvisioning
	case "ACTIVE":
		return StatusRunning
	case "SUSPENDED":
		return StatusStopped
	case "REBOOT", "HARD_REBOOT":
		return StatusReboot
	case "QUEUE_RESIZE", "PREP_RESIZE", "RESIZE", "VERIFY_RESIZE",
		"SHARE_IP", "SHARE_IP_NO_CONFIG", "DELETE_IP", "PASSWORD":
		return StatusUpdating
	case "RESCUE":
		return StatusError
	default:
		return StatusUnknown
	}
}
