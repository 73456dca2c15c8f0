package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"splyt/test/api"
)

const bodyValidationMessage = "request failed body validation"

// every It creates its own journeys, none depends on another
var _ = Describe("Journey creation", func() {
	Context("When all required fields are present", func() {
		It("should create the journey and echo it back with an id", func() {
			resp, err := client.CreateJourney(ctx, api.EltonJohn())
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			Expect(resp.Body).To(HaveKeyWithValue("_id", BeAssignableToTypeOf("")))
			Expect(resp.ID()).To(MatchRegexp(`^[0-9a-f]{24}$`))
			Expect(resp.Body).To(HaveKeyWithValue("departure_date", "2025-02-24T16:40:58.000Z"))
			Expect(resp.Body["pickup"]).To(HaveKeyWithValue("latitude", 51.5))
			Expect(resp.Body["pickup"]).To(HaveKeyWithValue("longitude", -0.15))
			Expect(resp.Body["passenger"]).To(HaveKeyWithValue("name", "Elton John"))
			Expect(resp.Body["passenger"]).To(HaveKeyWithValue("phone_number", "90234"))
		})

		It("should assign a different id to every journey", func() {
			first, err := client.CreateJourney(ctx, api.EltonJohn())
			Expect(err).NotTo(HaveOccurred())
			second, err := client.CreateJourney(ctx, api.EltonJohn())
			Expect(err).NotTo(HaveOccurred())

			Expect(first.ID()).NotTo(BeEmpty())
			Expect(first.ID()).NotTo(Equal(second.ID()))
		})

		It("should accept coordinates on the range boundaries", func() {
			payload := api.EltonJohn().
				With("pickup.latitude", -90).
				With("pickup.longitude", 180)

			resp, err := client.CreateJourney(ctx, payload)
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
		})
	})

	Context("When the passenger has no phone number", func() {
		It("should still create the journey", func() {
			resp, err := client.CreateJourney(ctx, api.EltonJohn().Without("passenger.phone_number"))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.ID()).To(MatchRegexp(`^[0-9a-f]{24}$`))
			Expect(resp.Body["passenger"]).NotTo(HaveKey("phone_number"))
		})
	})

	Context("When a required field is missing or malformed", func() {
		DescribeTable("should reject the journey with the generic validation message",
			func(payload api.Payload) {
				resp, err := client.CreateJourney(ctx, payload)
				Expect(err).NotTo(HaveOccurred())
				Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
				Expect(resp.Message()).To(Equal(bodyValidationMessage))
			},
			Entry("name is required",
				api.EltonJohn().With("departure_date", "2225-02-24T16:40:58.000Z").Without("passenger.name")),
			Entry("pickup is required",
				api.EltonJohn().With("departure_date", "2225-02-24T16:40:58.000Z").Without("pickup")),
			Entry("departure_date is required",
				api.EltonJohn().Without("departure_date")),
			Entry("departure_date must be ISO-8601 (misplaced, stray prefix)",
				api.EltonJohn().Without("departure_date").With("pickup.departure_date", ":2225-02-24T16:40:58.000Z")),
			Entry("departure_date must be ISO-8601 (stray prefix)",
				api.EltonJohn().With("departure_date", ":2225-02-24T16:40:58.000Z")),
			Entry("latitude and longitude must stay within bounds",
				api.EltonJohn().
					With("departure_date", "2225-02-24T16:40:58.000Z").
					With("pickup.latitude", 10000.5).
					With("pickup.longitude", -1000000.15)),
			Entry("latitude must be a number",
				api.EltonJohn().With("pickup.latitude", "51.5")),
			Entry("name must not be empty",
				api.EltonJohn().With("passenger.name", "")),
		)
	})
})
