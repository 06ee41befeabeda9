package nats_test

import (
	"os"
	"time"

	libNats "github.com/nats-io/nats.go"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/do"
	"github.com/samber/lo"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/pubsub/nats"
	"github.com/zhulik/tally/pkg/json"
	"github.com/zhulik/tally/testhelpers"
)

func natsURL() string {
	if url := os.Getenv("NATS_URL"); url != "" {
		return url
	}

	return libNats.DefaultURL
}

var _ = Describe("Nats PubSub", Ordered, func() {
	var injector *do.Injector

	BeforeAll(func() {
		conn, err := libNats.Connect(natsURL(), libNats.Timeout(time.Second))
		if err != nil {
			Skip("NATS is not reachable: " + err.Error())
		}

		conn.Close()

		cfg := testhelpers.NewConfig()
		cfg.NatsURL = natsURL()

		injector = testhelpers.NewInjector(cfg)
	})

	AfterAll(func() {
		if injector != nil {
			injector.Shutdown() //nolint:errcheck
		}
	})

	Describe("Publisher", func() {
		It("publishes events to the events stream", func(ctx SpecContext) {
			publisher := do.MustInvoke[*nats.Publisher](injector)
			client := do.MustInvoke[*nats.Client](injector)

			event := core.NewEvent(core.EventVoteCast, 3, "v1", core.Tally{ATotal: 1, TotalVotes: 1})
			event.Candidate = core.CandidateA

			Expect(publisher.Publish(ctx, event)).To(Succeed())

			stream := lo.Must(client.JetStream.Stream(ctx, core.EventsStreamName))
			subject := nats.EventSubjectName(core.DefaultEventsSubjectBase, core.EventVoteCast)

			msg := lo.Must(stream.GetLastMsgForSubject(ctx, subject))
			received := lo.Must(json.Unmarshal[core.Event](msg.Data))

			Expect(received.ID).To(Equal(event.ID))
			Expect(received.Candidate).To(Equal(core.CandidateA))
			Expect(received.Tally.TotalVotes).To(Equal(uint64(1)))
		})
	})

	Describe("Subscriber", func() {
		It("delivers ballots published to the ballot stream", func(ctx SpecContext) {
			subscriber := do.MustInvoke[core.Subscriber](injector)
			client := do.MustInvoke[*nats.Client](injector)

			subject := nats.BallotSubjectName(core.DefaultBallotSubjectBase)

			sub := lo.Must(subscriber.Subscribe(ctx, core.BallotsStreamName, []string{subject}, "tally-test"))
			defer sub.Stop()

			DeferCleanup(func(ctx SpecContext) {
				client.JetStream.DeleteConsumer(ctx, core.BallotsStreamName, "tally-test") //nolint:errcheck
			})

			payload := lo.Must(json.Marshal(core.Ballot{ID: "b1", Voter: "v1", Candidate: core.CandidateB}))
			lo.Must(client.JetStream.Publish(ctx, subject, payload))

			var msg core.Message

			Eventually(sub.C()).WithTimeout(5 * time.Second).Should(Receive(&msg))

			ballot := lo.Must(json.Unmarshal[core.Ballot](msg.Data()))
			Expect(ballot.Voter).To(Equal(core.Identity("v1")))
			Expect(ballot.Candidate).To(Equal(core.CandidateB))
			Expect(msg.Subject()).To(Equal(subject))
			Expect(msg.Ack()).To(Succeed())
		})
	})
})
