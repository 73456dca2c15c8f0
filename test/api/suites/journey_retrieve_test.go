package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"splyt/test/api"
)

var _ = Describe("Journey retrieval", func() {
	Context("Given a journey created with all required fields", func() {
		var journeyID string

		BeforeEach(func() {
			resp, err := client.CreateJourney(ctx, api.EltonJohn())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			journeyID = resp.ID()
		})

		It("should return exactly the stored journey", func() {
			resp, err := client.GetJourney(ctx, journeyID)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			Expect(resp.Body).To(Equal(map[string]interface{}{
				"_id": journeyID,
				"pickup": map[string]interface{}{
					"latitude":  51.5,
					"longitude": -0.15,
				},
				"departure_date": "2025-02-24T16:40:58.000Z",
				"passenger": map[string]interface{}{
					"name":         "Elton John",
					"phone_number": "90234",
				},
			}))
		})

		It("should return the same body on every read", func() {
			first, err := client.GetJourney(ctx, journeyID)
			Expect(err).NotTo(HaveOccurred())
			second, err := client.GetJourney(ctx, journeyID)
			Expect(err).NotTo(HaveOccurred())

			Expect(second.StatusCode).To(Equal(http.StatusOK))
			Expect(second.Raw).To(MatchJSON(first.Raw))
		})
	})

	Context("Given a journey created without a phone number", func() {
		It("should refuse to serve it", func() {
			created, err := client.CreateJourney(ctx, api.EltonJohn().Without("passenger.phone_number"))
			Expect(err).NotTo(HaveOccurred())
			Expect(created.StatusCode).To(Equal(http.StatusOK))

			resp, err := client.GetJourney(ctx, created.ID())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(resp.Message()).To(Equal("User has no phone number"))
		})
	})

	Context("Given an id that was never issued", func() {
		It("should not find a well-formed unknown id", func() {
			resp, err := client.GetJourney(ctx, "000000000000000000000000")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("should not find a malformed id", func() {
			resp, err := client.GetJourney(ctx, "not-a-journey")
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})
	})
})

var _ = Describe("Service health", func() {
	It("should report ok", func() {
		resp, err := client.Healthz(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(resp.Body).To(HaveKeyWithValue("status", "ok"))
	})
})
