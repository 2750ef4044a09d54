package extract

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/shopspring/decimal"
)

var _ = Describe("FindAmounts", func() {
	var (
		input  string
		tokens []string
	)

	JustBeforeEach(func() {
		tokens = FindAmounts(input)
	})

	When("the text contains a simple amount", func() {
		BeforeEach(func() {
			input = "TOTAL 123,45"
		})

		It("finds the token verbatim", func() {
			Expect(tokens).To(Equal([]string{"123,45"}))
		})
	})

	When("the amount uses a dot decimal separator", func() {
		BeforeEach(func() {
			input = "TOTAL 123.45"
		})

		It("finds the token", func() {
			Expect(tokens).To(Equal([]string{"123.45"}))
		})
	})

	When("the amount has thousands grouping", func() {
		BeforeEach(func() {
			input = "GRAND TOTAL 1.234,56"
		})

		It("keeps the original textual form", func() {
			Expect(tokens).To(Equal([]string{"1.234,56"}))
		})
	})

	When("several amounts appear on one line", func() {
		BeforeEach(func() {
			input = "2 x 3,50 7,00"
		})

		It("returns them left to right", func() {
			Expect(tokens).To(Equal([]string{"3,50", "7,00"}))
		})
	})

	When("the same amount appears twice", func() {
		BeforeEach(func() {
			input = "10,00 and again 10,00"
		})

		It("includes the duplicate", func() {
			Expect(tokens).To(Equal([]string{"10,00", "10,00"}))
		})
	})

	When("an amount-shaped substring sits inside a longer digit run", func() {
		BeforeEach(func() {
			input = "Card 12345,6789012"
		})

		It("does not match it", func() {
			Expect(tokens).To(BeEmpty())
		})
	})

	When("a digit immediately follows the token", func() {
		BeforeEach(func() {
			input = "Barcode 123,456"
		})

		It("does not match it", func() {
			Expect(tokens).To(BeEmpty())
		})
	})

	When("the text has no amounts", func() {
		BeforeEach(func() {
			input = "Thank you for shopping"
		})

		It("returns nothing", func() {
			Expect(tokens).To(BeEmpty())
		})
	})
})

var _ = Describe("NormalizeAmount", func() {
	var (
		token string
		value decimal.Decimal
		ok    bool
	)

	JustBeforeEach(func() {
		value, ok = NormalizeAmount(token)
	})

	When("the token uses a comma decimal", func() {
		BeforeEach(func() {
			token = "123,45"
		})

		It("parses it", func() {
			Expect(ok).To(BeTrue())
			Expect(value.String()).To(Equal("123.45"))
		})
	})

	When("the token has thousands grouping", func() {
		BeforeEach(func() {
			token = "1.234,56"
		})

		It("strips the grouping separator", func() {
			Expect(ok).To(BeTrue())
			Expect(value.String()).To(Equal("1234.56"))
		})
	})

	When("the token has no separator", func() {
		BeforeEach(func() {
			token = "12345"
		})

		It("reports a malformed literal", func() {
			Expect(ok).To(BeFalse())
		})
	})
})

var _ = Describe("AmountCandidates", func() {
	var (
		extractor  *Extractor
		input      string
		candidates []string
	)

	BeforeEach(func() {
		extractor = NewExtractor(DefaultKeywords())
	})

	JustBeforeEach(func() {
		candidates = extractor.AmountCandidates(input)
	})

	When("a single line names the total", func() {
		BeforeEach(func() {
			input = "TOTAL 123,45"
		})

		It("offers it as the best guess", func() {
			Expect(candidates[0]).To(Equal("123,45"))
		})
	})

	When("a subtotal line precedes the total line", func() {
		BeforeEach(func() {
			input = "SUBTOTAL 50,00\nTOTAL 123,45"
		})

		It("ranks the total first", func() {
			Expect(candidates[0]).To(Equal("123,45"))
		})

		It("never ranks the subtotal amount ahead of the total", func() {
			Expect(candidates).NotTo(ContainElement("50,00"))
		})
	})

	When("every amount sits on a disqualified line", func() {
		BeforeEach(func() {
			input = "CASH 200,00\nCHANGE 76,55"
		})

		It("returns no candidates", func() {
			Expect(candidates).To(BeEmpty())
		})
	})

	When("the total line carries several amounts", func() {
		BeforeEach(func() {
			input = "TOTAL 3,50 123,45"
		})

		It("keeps the last amount on the line", func() {
			Expect(candidates[0]).To(Equal("123,45"))
		})
	})

	When("the same token qualifies in both tiers", func() {
		BeforeEach(func() {
			input = "TOTAL 123,45\nVisa 123,45"
		})

		It("appears exactly once", func() {
			count := 0
			for _, c := range candidates {
				if c == "123,45" {
					count++
				}
			}
			Expect(count).To(Equal(1))
		})

		It("keeps the contextual position", func() {
			Expect(candidates[0]).To(Equal("123,45"))
		})
	})

	When("no line names the total", func() {
		BeforeEach(func() {
			input = "Coffee 3,50\nBagel 4,25\n1.250,00"
		})

		It("still offers candidates from the general tier", func() {
			Expect(candidates).NotTo(BeEmpty())
		})

		It("ranks the large amount first via the magnitude bonus", func() {
			Expect(candidates[0]).To(Equal("1.250,00"))
		})
	})

	When("quantity words sit next to an amount", func() {
		BeforeEach(func() {
			input = "2 pcs 3,50\n9,95"
		})

		It("ranks the unpenalized amount first", func() {
			Expect(candidates[0]).To(Equal("9,95"))
		})
	})

	When("the transcript offers many amounts", func() {
		BeforeEach(func() {
			input = "1,01\n2,02\n3,03\n4,04\n5,05\n6,06\n7,07"
		})

		It("truncates to five candidates", func() {
			Expect(candidates).To(HaveLen(5))
		})
	})

	When("called twice on the same input", func() {
		BeforeEach(func() {
			input = "Milk 1,20\nBread 2,30\nTOTAL 3,50\nEggs 2,30"
		})

		It("produces an identical ordered list", func() {
			Expect(extractor.AmountCandidates(input)).To(Equal(candidates))
		})
	})
})
