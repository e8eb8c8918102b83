package providers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jrsteele09/go-cloud-client/providers"
)

func TestNormalizeServerStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want providers.ServerStatus
	}{
		{raw: "BUILD", want: providers.StatusProvisioning},
		{raw: "REBUILD", want: providers.StatusProvisioning},
		{raw: "ACTIVE", want: providers.StatusRunning},
		{raw: "active", want: providers.StatusRunning},
		{raw: "SUSPENDED", want: providers.StatusStopped},
		{raw: "REBOOT", want: providers.StatusReboot},
		{raw: "HARD_REBOOT", want: providers.StatusReboot},
		{raw: "QUEUE_RESIZE", want: providers.StatusUpdating},
		{raw: "PREP_RESIZE", want: providers.StatusUpdating},
		{raw: "RESIZE", want: providers.StatusUpdating},
		{raw: "VERIFY_RESIZE", want: providers.StatusUpdating},
		{raw: "SHARE_IP", want: providers.StatusUpdating},
		{raw: "SHARE_IP_NO_CONFIG", want: providers.StatusUpdating},
		{raw: "DELETE_IP", want: providers.StatusUpdating},
		{raw: "PASSWORD", want: providers.StatusUpdating},
		{raw: "RESCUE", want: providers.StatusError},
		{raw: "SOMETHING_ELSE", want: providers.StatusUnknown},
		{raw: "", want: providers.StatusUnknown},
	}

	profile := providers.OpenStack()
	for _, tc := range cases {
		assert.Equal(t, tc.want, profile.NormalizeServerStatus(tc.raw), "status %q", tc.raw)
	}
}

func TestServiceTypeMapping(t *testing.T) {
	openstack := providers.OpenStack()
	assert.Equal(t, "compute", openstack.ServiceType(providers.Compute))
	assert.Equal(t, "volume", openstack.ServiceType(providers.BlockStorage))
	assert.Equal(t, "dns", openstack.ServiceType(providers.DNS))
	assert.Equal(t, "identity", openstack.ServiceType(providers.IdentityKind))
	assert.Empty(t, openstack.ServiceType(providers.Kind("no-such-kind")))

	rackspace := providers.Rackspace()
	assert.Equal(t, "rax:dns", rackspace.ServiceType(providers.DNS))
	assert.Equal(t, "compute", rackspace.ServiceType(providers.Compute))
}

func TestByName(t *testing.T) {
	assert.Equal(t, "rackspace", providers.ByName("Rackspace").Name())
	assert.Equal(t, "openstack", providers.ByName("openstack").Name())
	assert.Equal(t, "openstack", providers.ByName("").Name())
	assert.Equal(t, "openstack", providers.ByName("some-unknown-cloud").Name())
}
