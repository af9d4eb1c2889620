//go:build e2e

package e2e

import (
	"os"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/imamik/easycluster/internal/provisioning"
	"github.com/imamik/easycluster/internal/provisioning/cluster"
	"github.com/imamik/easycluster/internal/provisioning/resourcegroup"
	"github.com/imamik/easycluster/internal/provisioning/storage"
	"github.com/imamik/easycluster/internal/provisioning/workspace"
	"github.com/imamik/easycluster/internal/util/keygen"
)

var _ = Describe("Provisioning chain", Ordered, func() {
	It("creates the resource group once", func() {
		outcome, err := resourcegroup.EnsureExists(newContext())
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(provisioning.OutcomeCreated))

		outcome, err = resourcegroup.EnsureExists(newContext())
		Expect(err).NotTo(HaveOccurred())
		Expect(outcome).To(Equal(provisioning.OutcomeAlreadyExists))
	})

	It("creates the storage account and resolves key1", func() {
		pctx := newContext()
		key, err := storage.EnsureAccountExists(pctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(key).NotTo(BeEmpty())

		stored, err := pctx.State.StorageKey()
		Expect(err).NotTo(HaveOccurred())
		Expect(stored).To(Equal(key))

		By("ensuring the account a second time")
		again, err := storage.EnsureAccountExists(newContext())
		Expect(err).NotTo(HaveOccurred())
		Expect(again).To(Equal(key))
	})

	It("creates the file share and directory idempotently", func() {
		for _, want := range []provisioning.Outcome{provisioning.OutcomeCreated, provisioning.OutcomeAlreadyExists} {
			pctx := newContext()
			_, err := storage.FetchKey(pctx)
			Expect(err).NotTo(HaveOccurred())

			outcome, err := storage.EnsureShareExists(pctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(want))

			outcome, err = storage.EnsureDirectoryExists(pctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(outcome).To(Equal(want))
		}
	})

	It("refuses share operations without a key", func() {
		_, err := storage.EnsureShareExists(newContext())
		Expect(err).To(MatchError(provisioning.ErrMissingDependency))
	})

	It("creates the workspace", func() {
		pctx := newContext()
		ok, err := workspace.EnsureExists(pctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
		Expect(pctx.State.WorkspaceConfirmed()).To(Succeed())
	})

	It("reports a missing cluster as an error", func() {
		_, err := cluster.Monitor(newContext())
		Expect(err).To(HaveOccurred())
	})

	Context("with EASYCLUSTER_E2E_CLUSTER set", func() {
		BeforeEach(func() {
			if os.Getenv("EASYCLUSTER_E2E_CLUSTER") == "" {
				Skip("cluster creation is billed; set EASYCLUSTER_E2E_CLUSTER to run it")
			}
		})

		It("creates a cluster that mounts the share and reports its nodes", func() {
			pair, err := keygen.Generate(keygen.DefaultBits)
			Expect(err).NotTo(HaveOccurred())
			cfg.Cluster.AdminSSHPublicKey = pair.AuthorizedKey

			pctx := newContext()
			err = provisioning.RunPhases(pctx, []provisioning.Phase{
				resourcegroup.NewProvisioner(),
				storage.AccountPhase(),
				storage.SharePhase(),
				workspace.NewProvisioner(),
				cluster.NewProvisioner(),
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(pctx.State.Cluster).NotTo(BeNil())

			status, err := cluster.Monitor(newContext())
			Expect(err).NotTo(HaveOccurred())
			Expect(status.Target).To(BeEquivalentTo(cfg.Cluster.NodeCount))
			Expect(status.Lines()[0]).To(HavePrefix("Cluster state: "))
		})
	})
})
