package content

// ProductsQuery fetches the full food catalog for listing pages
const ProductsQuery = `*[_type == "food"]{
  "id": id,
  "slug": slug.current,
  name,
  price,
  "imageUrl": image.asset->url
}`

// ProductBySlugQuery fetches a single product for detail pages.
// $slug is supplied as a query parameter.
const ProductBySlugQuery = `*[_type == "food" && slug.current == $slug][0]{
  "id": id,
  "slug": slug.current,
  name,
  price,
  "imageUrl": image.asset->url
}`
