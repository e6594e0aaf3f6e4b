package dynarray_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynarray/internal/dynarray"
)

var _ = Describe("List", func() {
	var cities *dynarray.List[string]

	BeforeEach(func() {
		cities = dynarray.New[string]()
	})

	Describe("construction", func() {
		It("starts empty with the default capacity", func() {
			Expect(cities.Count()).To(Equal(0))
			Expect(cities.Capacity()).To(Equal(dynarray.DefaultCapacity))
		})

		It("rejects a capacity below one", func() {
			for _, c := range []int{0, -1, -100} {
				l, err := dynarray.NewWithCapacity[int](c)
				Expect(err).To(MatchError(dynarray.ErrInvalidArgument))
				Expect(l).To(BeNil())
			}
		})

		It("accepts a capacity of one", func() {
			l, err := dynarray.NewWithCapacity[int](1)
			Expect(err).NotTo(HaveOccurred())
			Expect(l.Capacity()).To(Equal(1))
		})
	})

	Describe("the city walkthrough", func() {
		It("tracks count, capacity and order through every step", func() {
			cities.AddRange("New york", "London", "Baku", "Istanbul")
			Expect(cities.Count()).To(Equal(4))
			Expect(cities.Capacity()).To(Equal(4))

			Expect(cities.Insert(2, "Sydney")).To(Succeed())
			Expect(cities.Capacity()).To(Equal(8))
			Expect(cities.Slice()).To(Equal([]string{"New york", "London", "Sydney", "Baku", "Istanbul"}))

			Expect(cities.Remove("Baku")).To(BeTrue())
			Expect(cities.Slice()).To(Equal([]string{"New york", "London", "Sydney", "Istanbul"}))

			Expect(cities.RemoveAt(1)).To(Succeed())
			Expect(cities.Slice()).To(Equal([]string{"New york", "Sydney", "Istanbul"}))

			cities.AddRange("Berlin", "Logan", "Helena")
			Expect(cities.Slice()).To(Equal([]string{"New york", "Sydney", "Istanbul", "Berlin", "Logan", "Helena"}))
			Expect(cities.IndexOf("Helena")).To(Equal(5))
			Expect(cities.Contains("Baku")).To(BeFalse())

			cities.Clear()
			Expect(cities.Count()).To(Equal(0))
			Expect(cities.Capacity()).To(Equal(8))
		})
	})

	Describe("Insert", func() {
		BeforeEach(func() {
			cities.AddRange("a", "b", "c")
		})

		It("rejects inserting at Count", func() {
			err := cities.Insert(3, "d")
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(cities.Slice()).To(Equal([]string{"a", "b", "c"}))
		})

		It("rejects a negative index", func() {
			Expect(cities.Insert(-1, "z")).To(MatchError(dynarray.ErrIndexOutOfRange))
			Expect(cities.Count()).To(Equal(3))
		})

		It("inserts at the front", func() {
			Expect(cities.Insert(0, "z")).To(Succeed())
			Expect(cities.Slice()).To(Equal([]string{"z", "a", "b", "c"}))
		})

		It("rejects every index on an empty list", func() {
			empty := dynarray.New[string]()
			Expect(empty.Insert(0, "x")).To(MatchError(dynarray.ErrIndexOutOfRange))
		})
	})

	Describe("Remove", func() {
		It("removes only the first match", func() {
			cities.AddRange("x", "y", "x")
			Expect(cities.Remove("x")).To(BeTrue())
			Expect(cities.Slice()).To(Equal([]string{"y", "x"}))
		})

		It("reports true when the match is the last element", func() {
			cities.AddRange("x", "y")
			Expect(cities.Remove("y")).To(BeTrue())
			Expect(cities.Slice()).To(Equal([]string{"x"}))
		})

		It("leaves the list unchanged when absent", func() {
			cities.AddRange("x", "y")
			Expect(cities.Remove("q")).To(BeFalse())
			Expect(cities.Slice()).To(Equal([]string{"x", "y"}))
		})
	})

	Describe("Find", func() {
		BeforeEach(func() {
			cities.AddRange("Berlin", "Baku", "Boston")
		})

		It("returns the first match", func() {
			got, ok := cities.Find(func(s string) bool { return strings.HasPrefix(s, "Ba") })
			Expect(ok).To(BeTrue())
			Expect(got).To(Equal("Baku"))
		})

		It("distinguishes a miss from a zero-valued match", func() {
			got, ok := cities.Find(func(s string) bool { return s == "" })
			Expect(ok).To(BeFalse())
			Expect(got).To(BeEmpty())

			cities.Add("")
			got, ok = cities.Find(func(s string) bool { return s == "" })
			Expect(ok).To(BeTrue())
			Expect(got).To(BeEmpty())
		})

		It("collects every match in a new list", func() {
			all := cities.FindAll(func(s string) bool { return strings.HasPrefix(s, "B") })
			Expect(all.Slice()).To(Equal([]string{"Berlin", "Baku", "Boston"}))
			Expect(all).NotTo(BeIdenticalTo(cities))

			none := cities.FindAll(func(s string) bool { return false })
			Expect(none.Count()).To(Equal(0))
		})
	})

	Describe("ForEach", func() {
		It("rejects a nil action", func() {
			Expect(cities.ForEach(nil)).To(MatchError(dynarray.ErrInvalidArgument))
		})

		It("visits live elements in order", func() {
			cities.AddRange("a", "b", "c")
			var seen []string
			Expect(cities.ForEach(func(s string) { seen = append(seen, s) })).To(Succeed())
			Expect(seen).To(Equal([]string{"a", "b", "c"}))
		})
	})
})
