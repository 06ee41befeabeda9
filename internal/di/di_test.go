package di_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/do"
	"github.com/zhulik/tally/internal/api"
	"github.com/zhulik/tally/internal/clock"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/election"
	"github.com/zhulik/tally/testhelpers"
)

var _ = Describe("RegisterServices", func() {
	var injector *do.Injector

	BeforeEach(func() {
		injector = testhelpers.NewInjector()
	})

	AfterEach(func() {
		Expect(injector.Shutdown()).To(Succeed())
	})

	It("builds the election from config", func() {
		elect := do.MustInvoke[*election.Election](injector)

		Expect(elect.Owner()).To(Equal(testhelpers.Owner))
		Expect(elect.CandidateAName()).To(Equal("Alice"))
		Expect(elect.ExpectedVotes()).To(Equal(uint64(2)))
		Expect(elect.Active()).To(BeTrue())
	})

	It("uses a manual clock when configured", func() {
		Expect(do.MustInvoke[core.Clock](injector)).To(BeAssignableToTypeOf(&clock.Manual{}))
	})

	It("serves the shared election over HTTP", func() {
		server := do.MustInvoke[*api.Server](injector)

		req := httptest.NewRequest(http.MethodPost, "/election/votes/a", nil)
		req.Header.Set(core.DefaultIdentityHeader, "v1")

		rec := httptest.NewRecorder()
		server.Router.ServeHTTP(rec, req)

		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(do.MustInvoke[*election.Election](injector).ATotal()).To(Equal(uint64(1)))
	})
})
