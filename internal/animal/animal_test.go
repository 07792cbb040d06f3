package animal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/handler-chain/internal/animal"
	"github.com/angeloszaimis/handler-chain/internal/chain"
)

var _ = Describe("Monkey -> Squirrel", func() {
	var head animal.Handler

	BeforeEach(func() {
		monkey := animal.NewMonkey()
		squirrel := animal.NewSquirrel()

		_, err := monkey.SetNext(squirrel)
		Expect(err).NotTo(HaveOccurred())
		head = monkey
	})

	It("should route a Nut past the monkey to the squirrel", func() {
		result, ok := head.Handle("Nut")
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal("Squirrel: I'll eat the Nut"))
	})

	It("should let the monkey take the Banana", func() {
		result, ok := head.Handle("Banana")
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal("Monkey: I'll eat the Banana"))
	})

	It("should leave a Cup of coffee untouched", func() {
		result, ok := head.Handle("Cup of coffee")
		Expect(ok).To(BeFalse())
		Expect(result).To(BeEmpty())
	})
})

var _ = Describe("Eater", func() {
	It("should eat any of its foods", func() {
		cat := animal.NewEater("Cat", "Fish", "Milk")

		result, ok := cat.Handle("Milk")
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal("Cat: I'll eat the Milk"))
		Expect(cat.Eats("Fish")).To(BeTrue())
		Expect(cat.Eats("Nut")).To(BeFalse())
	})

	It("should sit behind built-in animals without changing them", func() {
		head, err := chain.Build[string, string](animal.NewDog(), animal.NewEater("Cat", "Fish"))
		Expect(err).NotTo(HaveOccurred())

		result, ok := head.Handle("Fish")
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal("Cat: I'll eat the Fish"))

		result, ok = head.Handle("MeatBall")
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal("Dog: I'll eat the MeatBall"))
	})

	It("should forward when it has no matching food", func() {
		cat := animal.NewEater("Cat", "Fish")
		_, err := cat.SetNext(animal.NewSquirrel())
		Expect(err).NotTo(HaveOccurred())

		result, ok := cat.Handle("Nut")
		Expect(ok).To(BeTrue())
		Expect(result).To(Equal("Squirrel: I'll eat the Nut"))
	})
})

var _ = Describe("New", func() {
	It("should reject unknown kinds", func() {
		_, err := animal.New(animal.Spec{Kind: "giraffe"})
		Expect(err).To(MatchError(animal.ErrUnknownKind))
		Expect(err.Error()).To(ContainSubstring("giraffe"))
	})

	It("should require foods for an eater", func() {
		_, err := animal.New(animal.Spec{Kind: animal.KindEater, Name: "Cat"})
		Expect(err).To(MatchError(animal.ErrNoFoods))
	})

	It("should keep the order of specs", func() {
		handlers, err := animal.NewAll([]animal.Spec{
			{Kind: animal.KindSquirrel},
			{Kind: animal.KindEater, Name: "Cat", Foods: []string{"Fish"}},
			{Kind: animal.KindMonkey},
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(handlers).To(HaveLen(3))

		var names []string
		for _, h := range handlers {
			names = append(names, h.(animal.Named).Name())
		}
		Expect(names).To(Equal([]string{"Squirrel", "Cat", "Monkey"}))
	})

	It("should report the position of a bad spec", func() {
		_, err := animal.NewAll([]animal.Spec{{Kind: animal.KindDog}, {Kind: "?"}})
		Expect(err).To(MatchError(animal.ErrUnknownKind))
		Expect(err.Error()).To(HavePrefix("animal 1:"))
	})
})
