package testutil

import (
	"crypto/rsa"
	"encoding/hex"
	"math/big"
)

// rsaKeyHex holds the fields of a two-prime RSA key as big-endian hex.
type rsaKeyHex struct {
	n, e, d, p, q string
}

func mustBigHex(s string) *big.Int {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return new(big.Int).SetBytes(b)
}

func (k rsaKeyHex) privateKey() *rsa.PrivateKey {
	sk := &rsa.PrivateKey{
		PublicKey: rsa.PublicKey{
			N: mustBigHex(k.n),
			E: int(mustBigHex(k.e).Int64()),
		},
		D:      mustBigHex(k.d),
		Primes: []*big.Int{mustBigHex(k.p), mustBigHex(k.q)},
	}
	sk.Precompute()
	return sk
}

var strongKey2048 = rsaKeyHex{
	n: "b31928fd04c205d364cab9f7a5620dd8db9992dfaa41c1d29b11df91204ddc0d28a5869cfc4c8ee2fca229c487b0f529c7d782303d4f5b9d85019031b159e4a7ad7d172ccd73915f10550a7f19d63bfe438d6801a226dedc054bee2958c599cfd8513ed26ae29a5521f6ab7ae4991404b6888d60a76eadec189492a988e4c941d3ffd8feb7bdf715ec0ceaf53707d83e3cc743ec3b7d88d5dc46b615a63d4fee9a0a391546069b811e29095d5a1319fbb70248c35711a46d3c16f1444be285aeddb33256ca775562e755ac9449bfec12cdd099c8dac96b3469764c474a88bc7e1dd19db68e9275606a81428616554a918a951bde14ee093dbdbdbbd0892486f9",
	e: "010001",
	d: "1bcda61d5165c57dc1c1ef08d0f5ddec727aeee026103b44b4aa1ba8edf8e8566a9ef7bcdb360f609193a3244d645d4af529319ec785d0552dd6c649d09c81f0bdf0136ef31e23cd3c3dd7794fcb8058c2a7eb2385c6bf062d14528ebca7406f91c75b17535c8654fd06cc2c31dcc9ccc9817d6129dcf6c71631ca6ae3439132921a9c18111b4b11b421868feac7c9ed6c73c437a24dbc5b364790cf4e7ac1573e72bab1b1e456b55e2ea0a673986f2305c50122ba924db6d281a5e3efc6c03d0fdc690d4d8e4fb5f45a1c4ce5c4595fde5563e8be01170e6e7ef6396bd8d435a14028748d4ef182fbffcc4aa1b99f86a6155cd26da9bb218a1e3b2cdce38e19",
	p: "edec7eb7cca858e3fc1c0f4eef5f4574216c96614d3bdee1830930a0036f85f277eb6ff33a757fcf6323325b1967eae0f802dffd2a79c2c222f17c6378bc8d08e3d6ba975e13c62e5b93e2bb561fb1587dfeb14b20cf5cce9f4518b8eb052c8e48c0b891dd94fa2fef904d45ffe00f7a1a8e77c3c34e337612eba4b40a16078f",
	q: "c0b4895d14c4e4aca5eee0bf0e58b0da5a210a2793ca06ba8f6b8a6b70202cabc545c220922f02ca849f4ee79313e3fbdfdbdb85367b307f8fe663e108d3bdac4399836e225f1956c3d112167f24db0e429a71d2ad191465f3b99cd3370bfd7b3e8d1a5e5e788dcfab21ddb00f1aaa73d7cb62f0228449a51d032c9f636b04f7",
}

var anotherStrongKey2048 = rsaKeyHex{
	n: "cfe2049a15de49dd75e828eb8f5321b44f3d4169f53f9b58b37f1aba52f87ea749b830284857eab7f0ea3bac6b866e5f485be31cea03a7ff2c0ba7cfdbe6f070fc49e37e28f2afe90b61e12a877febb1d4ba6fc0932df332afe51e8fa702a762b944a3f80a5fea2612cc75c59400e00df62ba4be83cc50198c39b6ac4bc6a5b4f6edaf0bdeac025d6dd03d9f0f7c2127cf3c046a7e4e7cc7bc33f246f52408df49b29696d994e190076a78142cd353c4d5fe38d9708466e49131efa416d35218cde5c380d548599b8ce39a9efcfe04df6aa317e122ac981346dbde6af84544d8f04e1c19749e6a8fb1efff4b3c3dc3d7d2c95eefc1acd2dd80b5ff585eabfb09",
	e: "010001",
	d: "1176a1bf55fdf603922f9e1c67ce6a82ecb32f271910ae5aadbd8c3fc1cf99483163b53bf513d9a679291c393851333d72e53137911b1c864dab6efe01b1ad5a387f768a7723280ef24357388ce87ca2d4459334c0c877e936a88f402f1e0474c12e987db2556b64a668a1ae26e849ea325769400def607d3cefee3e1c218472ffea639163dd7e802b20e35b3d0cd7c11229cde6ad4d73cb097c1b348f5586585d2727ff62789385665d11b16eceffd85582b58a858ca356d7011bb5e4777bf3b67fef77cc528c56a147d6d7229398bb7bb057139a9b9e7d33e5ac6f302c538b4c81901ef28adb6c530cd549d61ec78e9402fb0deaab176027fda9b0801403e7",
	p: "fda22fbc727c67fa8b5c72c54bf5136a564de2f46697f1953f751da1cc5bde428f5a5f7007c775a14ab25d1b6996b374bfc1df6665b8e9d2914754ad1a3cebd8bf6da17e9ea0a98d289e609681fd295500d0803522696662a1564eb6d4f1422db8d8da48826df937cd19176e41889481d1309086aee3968c2692dd893f59288b",
	q: "d1d28de5df823cea723f6979d73d44d86c202328cd4914abffd7b2e11245c075d4e501dca7b90249bdb273fe6f78dbc4fdf0229dcb333b9fc24ec6ffd02fcda1a8fa788e3b49f0376be5ce222ccdf92e17e651a5a53507d9687f62835b08825f53f7e3d760e98e83533e71721b10cd8832dc1c471875655d66cb19e58bb0493b",
}

var strongKey3072 = rsaKeyHex{
	n: "bd8be57544c2b43220d80b377fa22d69226e968b9f04e321e7c9e82ec4a4849386d2c4377cf2b8ec93145fbebb6f4508266169e4a83b37671f28285fe91c75a4b721804e71a7eaea97d42cd3055e4e46e78ed10898472f92c61d981d1df20d55f89e0558eb95a13f5f8ae04aa2cbfbf99c4599702b1498ab337fe36396a39a073c5d5dbedf557e6d245f807c28a4c2f44197ae256190d9a410392ede4fdf9d337fc201bb26447fabc442b19c79c531e12922a90bada53615b12e9a54ecb033f9a22be859984e296d632c9eb287825bb4bfb7f3d16c4f2ba30b2ca5a04512e62c993351c7039a64d865ba49eb960b176dbe7c4853db37911f7bae782732441e428992422754ca3d78a20e9cedbafa8ec2460403997c381772be64b72133c1585b0d1fe5e96a3f7e2388228826989766da37f9949d1040230cb78f88005e5e92796a285b3acdd90733ed4a111d35f4632eda15dc669e595380331acab1e98cf872126dac05c2d7a7beff889ff39ea60cf7ac69f62bd35e6c2ff193c9037d0f500d",
	e: "010001",
	d: "2de57b093b3e1e1de94006ef48537fc56e55f2d41a0c37e754d5da07c10bc92263ca134310594197df4156b1bb7704f3253fff4123cf3aea186c43e27d72abb5d7b61ff85ea2f74a18bb82a31230b4a98c96535d4e6a2645d6fd0181436801fca837b339c5c9b482c0e2c2ceafbecee3b108555008ce72ed398a25084f488c1a666e812d9fac76f17c96376958fa144ecab72caed68219811580932db78f80e420725cb2f16032bde7c6f274de3376917bc16dc76b238f060fa226329c214a642417795cc3efa5337b1b89d6b14ac31e681c2e2a8962c086feaf590eb54769d05d5eaa2b96113ab27fd8ecca8e5ac717604af7c9e2572f05859d22b5658ba76206ca3f5a8c780bc664f5448927348427ac08e5713ebe160d2a4968093fad401547669487775baf5c5605cff96e8170e5cde4eab215ee05d3a8a3416426573f2026157aaea1b8626102e969cb7fdfa67d4585d4970dd708308a6bd7f1cad1bc916ae3e8be82f2a9444a43cd171ad636f62b5c5b76d9709c39ae36f03ec6bbceed",
	p: "e9ca59fe1ddb5c5050192692145220e04623867aff99f70a0224c11144c167dc79f21df61b64c378c82940b78dd5608ff07a00bb83261e6f328ddea1f53a40a7b9a6bc9702e05afd1717456416f26b199cdb704d0d5b555deaf4d1d6e738b86db8096fc57c4d3c8cd3b510a6d5fa90c05135aec2dc161fd9e38771b7f4d26ff0e8a1d0ec0dd4d832128df1adbdf33125f723717efe947c65539ddeadc95e8960b79f0c77ec8761c38bced50a76f145176c0b5dace6b7e3aa0b2ba16646357ec3",
	q: "cf8d8e9c9102b69b76e28aa06431c177320e8ae147db85432507d51a68c587ac548197cc73666ae65ba4de3c5a974a4344f1f804969431537ff31e3f23f3cc50f90d69b4f994b41040aef3072b2cf2679094860924a6404b7196386463a074a6fd1b0b4bfcbcab82f81549f44a65ff33a6ce5788fc1a7710759ca59c2040c21f1c97d66ee0f110c4f37da1c07508b0e60ea1878ea6133ddf8ba4b29fc1761e5b43b7830ab87768058eec47c22a3ff8bbde4f6b10849b78daa6a072c30f7aa8ef",
}

var strongKey4096 = rsaKeyHex{
	n: "cd7d928f252a882c2ba68c1705970f61b7f63c5e907ea5f34e650e3c35edd74678734d626fca38a1230c52147cb8b16e2db9adbfe7ce4647ef2eb49b4ade458c80ef0e29ac4109233d0f512643106fb2e42308fbc2db13c1db24c672a3bfc32acfb429ae5104507f2b342473a9aa5eab8a9c24d7fe08fb59bea4049d14fea781484591460e5eef62bd67d3c28aa8e360c50b936998565ca12fbc647d32c446f3f326fe0a36388bfb3ed7a4c1e8c900a299c88bdaf6dc9ebb032f810f682ddfc2d5fa46e8fa28b8bdfa32131f259615f85bde8a4eb8258ccbda83e62cf12795c0cae1498c2b435e27c31b9ef8a1efbf9552bc6f929a76d9d3a997bfe6fe11c155a571446decdb5032b80482d0bcb8ab0a23ab82451049a1af692764b69187620005a9d3b5d530d38bfc41938066f505a6e2484795ce70a69e5df5a551b5179ff1ed3a34eceb09834317de137d9c2d6b35c745c67b05a1412fc0f616581a051f41bf14c48dcc8b558f92cdee22f5d0f4a75c232e4acf45d3d2491a2eda3d7ed40fcef81058b8b3b019ef7492453dd3220d5a1ee706abcf4da44a572376eee594dca796f8be05ba104ea08881e68c09132622f233574bd0c3f9dfaa9ae7c6579b90312851aeec02b2678c5e530cc8fbc30e389799df92a2898c3420836763e199488adc8e5464ff4a67debf35ac2011d4723c3cf1ea1326ce555f80611b20944a31",
	e: "010001",
	d: "1d618f83851a64370094c322058c18486e0fb88902db00ea5d72a88ae66117ef3d08ab6f603187504edd139d5749e720ac4c08b2503817a77064fab0db8f155da60fc834202b7a5d7dfd032ad7daf145a045fc22573590c91e86cf131423b689980218159302ed6989695eaee4faf5a74c5dd00ccc0747bd08bb95e749d9b164944b521eb4ae51470a72de7dc9eaa4fc30a05b96f50fa015f1e7db6c65465828c842f27ece4ade84f172cedd64e5dc7fe3421ff1126bf00c2843f20d9c6536c1ba6b9b18f3afbfde75f813f0d7a47286bcc8007989ede0884339a9bf124a0928f4392b156e18274dc3215f65086e69b3b58d38dcbad6348605912b80a12233c4c418ab6cedeb313207c2567e0754a9f0b4ac5365cfbc699ccc3a967a668e9ee9c272c4dfac1a7024bd98ccb7e6de98fe5a3a43fcb01e0d354ca7b31c266253a35f7ee1109c59f2523bd03fa6d8c6f03c5b347fc597c3d0011a0d984105b74a2a406a7ab815657da88c8ee56d78925409df32f8698a75af8fb2b3576b5676c1ffc8026421b73e72698b3d10695f369874fa681df1b4f1e78155ff7238b23a1f1b73541fd4a60831a5d78c6a8b2b86d9a5d24f36c9437f5b8e5e522d078c9f23c6bbd24e0b261b575b4d31b3d05434afb3b45442f981d33954d0b433808aa0cacaba9530f3f6083dd059a0ad36ade853997c575a0036a691851f34c391be7e6f43",
	p: "e6503c05c40a5db99f52ae1ae7ae3a313802821e2d93a431f71c21206e7cf683603de565b0788038841f761025f4f50b090a2a828240460d5eba1fc49cec36d93cb7ee2abda6dadeda381b83c3e6f18c1ddea7651a7fe87ee65ce089817baa7998c6db994132850d6b47f9afbf6c6fbf7d813173d2d2f904892288dc603f4b11c96d67228b0591f49311f227f81cad39161039028b009155a703ea581d3f10b4b668e59d07f0ca90bc26970b854ac17abdd86789ee0d61db5942226f498099076ce05aaa72a52cf6006216a8f7d1afbd64e9449b068c65faeec6cdb3b02a2d0f9320d85d963067c38093ad6a3483a3db7e5964ba29634540de9ed60b8e1423ab",
	q: "e4689c2d46a1e63dc955942bc34a948b50cc1047cd61b67aec389f7315aac62d9d24971525a1d925a93d4da005280298587b3559aba6c2329c63baaa37ab7fabb88c349ad34f7cfd3a57d5c4dc2c9a623fdb5724af0e808a00ec3a02d503b02905fa8dbb97d47d588dd9dab46cc03709f54fff79d0c5941372faa9f9b6ff7524b4cb1740b6af34ced5c39b47ce4902387dffffdb7ab6c38a54e55d42b47359cef31e1d993abdaf15fab917a15db3a558660ad5fe3bcd298c2625481bc61b3aecfc960c6c7d732c560fcd99cf1d6d56da6c0ed876b2b957d0c2d7e86a1cd57a08380f526f18e4d3ca9000271cbf8e87f66e4f908834df312c6a6d62b9137c6d93",
}

// StrongRSAKey2048 returns a 2048-bit key whose primes are both safe primes.
func StrongRSAKey2048() *rsa.PrivateKey {
	return strongKey2048.privateKey()
}

// AnotherStrongRSAKey2048 returns a second, unrelated 2048-bit strong key.
func AnotherStrongRSAKey2048() *rsa.PrivateKey {
	return anotherStrongKey2048.privateKey()
}

func StrongRSAKey3072() *rsa.PrivateKey {
	return strongKey3072.privateKey()
}

func StrongRSAKey4096() *rsa.PrivateKey {
	return strongKey4096.privateKey()
}
