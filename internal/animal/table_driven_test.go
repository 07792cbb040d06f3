package animal_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/angeloszaimis/handler-chain/internal/animal"
)

var _ = Describe("Table-Driven Animal Tests", func() {
	DescribeTable("every kind can be built from a spec",
		func(spec animal.Spec, name string) {
			h, err := animal.New(spec)
			Expect(err).NotTo(HaveOccurred())
			Expect(h.(animal.Named).Name()).To(Equal(name))
		},
		Entry("Monkey", animal.Spec{Kind: animal.KindMonkey}, "Monkey"),
		Entry("Squirrel", animal.Spec{Kind: animal.KindSquirrel}, "Squirrel"),
		Entry("Dog", animal.Spec{Kind: animal.KindDog}, "Dog"),
		Entry("Eater", animal.Spec{Kind: animal.KindEater, Name: "Cat", Foods: []string{"Fish"}}, "Cat"),
	)

	DescribeTable("a lone animal eats only its own food",
		func(h animal.Handler, food, want string) {
			result, ok := h.Handle(food)
			Expect(ok).To(BeTrue())
			Expect(result).To(Equal(want))

			_, ok = h.Handle("Cup of coffee")
			Expect(ok).To(BeFalse())
		},
		Entry("Monkey", animal.NewMonkey(), animal.Banana, "Monkey: I'll eat the Banana"),
		Entry("Squirrel", animal.NewSquirrel(), animal.Nut, "Squirrel: I'll eat the Nut"),
		Entry("Dog", animal.NewDog(), animal.MeatBall, "Dog: I'll eat the MeatBall"),
		Entry("Eater", animal.NewEater("Cat", "Fish"), "Fish", "Cat: I'll eat the Fish"),
	)

	It("should list every supported kind", func() {
		Expect(animal.Kinds()).To(ConsistOf("monkey", "squirrel", "dog", "eater"))
	})
})
