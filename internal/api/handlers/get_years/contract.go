package get_years

type Catalog interface {
	Years() []int
}
