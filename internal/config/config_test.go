package config_test

import (
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/zhulik/tally/internal/config"
	"github.com/zhulik/tally/internal/core"
)

var _ = Describe("Config", Serial, func() {
	setEnv := func(values map[string]string) {
		for key, value := range values {
			previous, existed := os.LookupEnv(key)

			lo.Must0(os.Setenv(key, value))

			DeferCleanup(func() {
				if existed {
					lo.Must0(os.Setenv(key, previous))
				} else {
					lo.Must0(os.Unsetenv(key))
				}
			})
		}
	}

	Describe("Parse", func() {
		Context("when only the owner is set", func() {
			It("uses defaults", func() {
				setEnv(map[string]string{"OWNER": "0xowner"})

				cfg, err := config.Parse()

				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.HTTPPort()).To(Equal(8080))
				Expect(cfg.LogLevel()).To(Equal("info"))
				Expect(cfg.NATSEnabled()).To(BeFalse())
				Expect(cfg.Owner()).To(Equal(core.Identity("0xowner")))
				Expect(cfg.IdentityHeader()).To(Equal(core.DefaultIdentityHeader))
				Expect(cfg.TickMode()).To(Equal(core.TickModeInterval))
				Expect(cfg.TickInterval()).To(Equal(time.Second))
				Expect(cfg.EventsSubject()).To(Equal(core.DefaultEventsSubjectBase))
				Expect(cfg.BallotSubject()).To(Equal(core.DefaultBallotSubjectBase))
			})
		})

		Context("when everything is set", func() {
			It("reads the environment", func() {
				setEnv(map[string]string{
					"OWNER":          "root",
					"HTTP_PORT":      "9090",
					"NATS_URL":       "nats://nats:4222",
					"CANDIDATE_A":    "Elon Musk",
					"CANDIDATE_B":    "Jeff Bezos",
					"EXPECTED_VOTES": "4",
					"TICK_MODE":      "manual",
					"TICK_INTERVAL":  "250ms",
				})

				cfg, err := config.Parse()

				Expect(err).ToNot(HaveOccurred())
				Expect(cfg.HTTPPort()).To(Equal(9090))
				Expect(cfg.NATSEnabled()).To(BeTrue())
				Expect(cfg.NATSURL()).To(Equal("nats://nats:4222"))
				Expect(cfg.CandidateAName()).To(Equal("Elon Musk"))
				Expect(cfg.CandidateBName()).To(Equal("Jeff Bezos"))
				Expect(cfg.ExpectedVotes()).To(Equal(uint64(4)))
				Expect(cfg.TickMode()).To(Equal(core.TickModeManual))
				Expect(cfg.TickInterval()).To(Equal(250 * time.Millisecond))
			})
		})

		Context("when the owner is missing", func() {
			It("returns an error", func() {
				setEnv(map[string]string{"OWNER": ""})
				lo.Must0(os.Unsetenv("OWNER"))

				_, err := config.Parse()

				Expect(err).To(HaveOccurred())
			})
		})
	})
})
