package ballotbox_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/zhulik/tally/internal/ballotbox"
	"github.com/zhulik/tally/internal/clock"
	"github.com/zhulik/tally/internal/core"
	"github.com/zhulik/tally/internal/election"
	"github.com/zhulik/tally/internal/identity"
)

var errBroken = errors.New("broken")

var _ = Describe("Worker", func() {
	var (
		logger     *logrus.Logger
		elect      *election.Election
		subscriber *fakeSubscriber
		worker     *ballotbox.Worker
	)

	BeforeEach(func() {
		logger = logrus.New()
		logger.SetOutput(io.Discard)

		elect = lo.Must(election.New(election.Params{
			CandidateAName: "Alice",
			CandidateBName: "Bob",
			ExpectedVotes:  2,
			Owner:          "owner",
		}, clock.NewManual(0)))

		subscriber = &fakeSubscriber{sub: &fakeSubscription{ch: make(chan core.Message)}}
		worker = ballotbox.New(elect, subscriber, core.DefaultBallotSubjectBase, logger)
	})

	Describe("Handle", func() {
		It("counts a valid ballot and acks it", func() {
			msg := &fakeMessage{data: []byte(`{"id":"1","voter":"v1","candidate":"A"}`)}

			worker.Handle(context.Background(), msg)

			Expect(msg.Acked()).To(BeTrue())
			Expect(elect.ATotal()).To(Equal(uint64(1)))
			Expect(elect.HasVoted("v1")).To(BeTrue())
		})

		It("acks a duplicate ballot without counting it", func() {
			worker.Handle(context.Background(), &fakeMessage{data: []byte(`{"voter":"v1","candidate":"A"}`)})

			msg := &fakeMessage{data: []byte(`{"voter":"v1","candidate":"B"}`)}
			worker.Handle(context.Background(), msg)

			Expect(msg.Acked()).To(BeTrue())
			Expect(msg.Naked()).To(BeFalse())
			Expect(elect.BTotal()).To(BeZero())
		})

		It("treats a bus ballot and a header vote from the same address as one participant", func() {
			msg := &fakeMessage{data: []byte(`{"voter":" 0xABCDEF ","candidate":"A"}`)}

			worker.Handle(context.Background(), msg)

			Expect(msg.Acked()).To(BeTrue())
			Expect(elect.HasVoted("0xabcdef")).To(BeTrue())

			req := httptest.NewRequest(http.MethodPost, "/election/votes/b", nil)
			req.Header.Set(core.DefaultIdentityHeader, "0xABCDEF")

			voter := lo.Must(identity.NewHeaderSource("").Resolve(req))

			Expect(elect.VoteB(context.Background(), voter)).To(MatchError(core.ErrAlreadyVoted))
			Expect(elect.TotalVotes()).To(Equal(uint64(1)))
			Expect(elect.Snapshot().Voters).To(Equal([]core.Identity{"0xabcdef"}))
		})

		It("acks a ballot without a candidate", func() {
			msg := &fakeMessage{data: []byte(`{"voter":"v1"}`)}

			worker.Handle(context.Background(), msg)

			Expect(msg.Acked()).To(BeTrue())
			Expect(elect.TotalVotes()).To(BeZero())
		})

		It("acks malformed payloads", func() {
			msg := &fakeMessage{data: []byte(`not json`)}

			worker.Handle(context.Background(), msg)

			Expect(msg.Acked()).To(BeTrue())
			Expect(elect.TotalVotes()).To(BeZero())
		})

		It("naks ballots that failed for other reasons", func() {
			worker = ballotbox.New(failingVoter{err: errBroken}, subscriber, core.DefaultBallotSubjectBase, logger)
			msg := &fakeMessage{data: []byte(`{"voter":"v1","candidate":"A"}`)}

			worker.Handle(context.Background(), msg)

			Expect(msg.Naked()).To(BeTrue())
			Expect(msg.Acked()).To(BeFalse())
		})
	})

	Describe("Run", func() {
		It("subscribes to the ballot stream and applies ballots until the subscription ends", func() {
			done := make(chan error)

			go func() {
				done <- worker.Run(context.Background())
			}()

			first := &fakeMessage{data: []byte(`{"voter":"v1","candidate":"B"}`)}
			second := &fakeMessage{data: []byte(`{"voter":"v2","candidate":"B"}`)}

			subscriber.sub.ch <- first
			subscriber.sub.ch <- second
			close(subscriber.sub.ch)

			Eventually(done).Should(Receive(MatchError(ballotbox.ErrStopped)))

			Expect(subscriber.stream).To(Equal(core.BallotsStreamName))
			Expect(subscriber.subjects).To(Equal([]string{"tally.ballots.cast"}))
			Expect(subscriber.durable).To(Equal(core.BallotsConsumer))

			Expect(first.Acked()).To(BeTrue())
			Expect(second.Acked()).To(BeTrue())
			Expect(elect.Completed()).To(BeTrue())
			Expect(elect.Winner()).To(Equal(core.CandidateB))
		})

		It("stops on shutdown", func() {
			done := make(chan error)

			go func() {
				done <- worker.Run(context.Background())
			}()

			Eventually(subscriber.Durable).Should(Equal(core.BallotsConsumer))
			Expect(worker.Shutdown()).To(Succeed())

			Eventually(done).Should(Receive(MatchError(ballotbox.ErrStopped)))
		})
	})

	Describe("IsRejection", func() {
		It("recognizes wrapped domain errors", func() {
			err := elect.Vote(context.Background(), core.None, "v1")

			Expect(ballotbox.IsRejection(err)).To(BeTrue())
			Expect(ballotbox.IsRejection(errBroken)).To(BeFalse())
		})
	})
})
